package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/cake/internal/debug"
)

// job is one non-blank, non-comment batch line.
type job struct {
	line   int
	fields []string
}

func newBatchCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate one command per line from a file or stdin",
		Long: `Each line holds "<scalar|vec|rect> <op> <args...>". Blank lines and
lines starting with # are skipped. Results are printed in input order;
the first failing line aborts the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open batch file: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runBatch(cmd.Context(), in, cmd.OutOrStdout(), cfg)
		},
	}
}

func readJobs(r io.Reader) ([]job, error) {
	var jobs []job
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		jobs = append(jobs, job{line: n, fields: strings.Fields(line)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return jobs, nil
}

func evalLine(j job, cfg *config) (string, error) {
	if len(j.fields) < 2 {
		return "", fmt.Errorf("line %d: %w: want <kind> <op> [args...]", j.line, errArity)
	}
	outs, err := evaluate(j.fields[0], j.fields[1], j.fields[2:])
	if err != nil {
		return "", fmt.Errorf("line %d: %w", j.line, err)
	}
	return render(outs, cfg), nil
}

// runBatch evaluates every job with at most cfg.jobs in flight and writes
// the rendered results in input order once all have succeeded.
func runBatch(ctx context.Context, r io.Reader, w io.Writer, cfg *config) error {
	jobs, err := readJobs(r)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]string, len(jobs))
	errs := make([]error, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, j := range jobs {
		i, j := i, j // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = evalLine(j, cfg)
			if debug.Enabled() {
				debug.Log("batch line %d: %s -> %q err=%v", j.line, strings.Join(j.fields, " "), results[i], errs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Report the lowest failing line regardless of completion order.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	debug.Log("batch: evaluated %d line(s)", len(jobs))

	bw := bufio.NewWriter(w)
	for _, res := range results {
		fmt.Fprintln(bw, res)
	}
	return bw.Flush()
}
