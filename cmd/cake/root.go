package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grindlemire/cake/internal/debug"
)

// config holds the settings shared by every subcommand.
type config struct {
	precision int
	plain     bool
	debugPath string
	jobs      int
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "cake",
		Short:         "Evaluate float32 math and 2D geometry operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.precision < 0 {
				return fmt.Errorf("precision must not be negative, got %d", cfg.precision)
			}
			if cfg.jobs < 1 {
				return fmt.Errorf("jobs must be at least 1, got %d", cfg.jobs)
			}
			if err := debug.Init(cfg.debugPath); err != nil {
				return err
			}
			if !cmd.Flags().Changed("plain") {
				if f, ok := cmd.OutOrStdout().(*os.File); !ok || !isTerminal(f) {
					cfg.plain = true
				}
			}
			debug.Log("cake %s: precision=%d plain=%v jobs=%d", cmd.Name(), cfg.precision, cfg.plain, cfg.jobs)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.IntVarP(&cfg.precision, "precision", "p", 4, "decimal places in printed numbers")
	flags.BoolVar(&cfg.plain, "plain", false, "print bare tab-separated values (default when stdout is not a terminal)")
	flags.StringVar(&cfg.debugPath, "debug", "", "append debug log to this file (default $"+debug.EnvVar+")")
	flags.IntVarP(&cfg.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "parallel evaluations in batch mode")

	for _, kind := range []string{kindScalar, kindVec, kindRect} {
		root.AddCommand(newEvalCmd(cfg, kind))
	}
	root.AddCommand(newBatchCmd(cfg), newListCmd(), newVersionCmd())
	return root
}

func newEvalCmd(cfg *config, kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <op> [args...]",
		Short: "Evaluate a " + kindTitles[kind] + " operation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outs, err := evaluate(kind, args[0], args[1:])
			if err != nil {
				return err
			}
			debug.Log("%s %s %v -> %d value(s)", kind, args[0], args[1:], len(outs))
			fmt.Fprintln(cmd.OutOrStdout(), render(outs, cfg))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every operation with its arguments",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range []string{kindScalar, kindVec, kindRect} {
				for _, name := range opNames(kind) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", kind, name, registries[kind][name].usage)
				}
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cake version %s\n", version)
		},
	}
}

// execute runs cmd with args and closes the debug log however the command
// exits.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(separateNegatives(args, cmd.PersistentFlags()))
	err := cmd.Execute()
	if cerr := debug.Close(); err == nil {
		err = cerr
	}
	return err
}

// separateNegatives inserts "--" before the first negative number so flag
// parsing stops there and values like -3 reach the command as arguments.
// A negative number given as the value of a flag such as -p stays in place.
func separateNegatives(args []string, flags *pflag.FlagSet) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, err := strconv.ParseFloat(arg, 32); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if takesValue(arg, flags) {
			i++
		}
	}
	return args
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(arg string, flags *pflag.FlagSet) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else if len(arg) == 2 {
		f = flags.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
