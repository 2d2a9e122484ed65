package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/cake"
)

var (
	errUnknownOp = errors.New("unknown operation")
	errArity     = errors.New("wrong number of arguments")
)

// evaluate resolves name in the registry for kind and runs it on args.
func evaluate(kind, name string, args []string) ([]output, error) {
	reg, ok := registries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", errUnknownOp, kind)
	}
	o, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q (try: cake list)", errUnknownOp, kind, name)
	}
	if len(args) != o.arity {
		return nil, fmt.Errorf("%w: %s %s takes %d (%s), got %d", errArity, kind, name, o.arity, o.usage, len(args))
	}
	vals, err := parseFloats(args)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", kind, name, err)
	}
	return o.run(vals), nil
}

func parseFloats(args []string) ([]float32, error) {
	vals := make([]float32, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = float32(f)
	}
	return vals, nil
}

// render formats outputs on one line. Plain mode prints bare values
// separated by tabs; otherwise each value carries its label.
func render(outs []output, cfg *config) string {
	parts := make([]string, len(outs))
	for i, o := range outs {
		v := formatValue(o.value, cfg.precision)
		if cfg.plain {
			parts[i] = v
			continue
		}
		parts[i] = o.label + ": " + v
	}
	if cfg.plain {
		return strings.Join(parts, "\t")
	}
	return strings.Join(parts, "  ")
}

func formatValue(v any, prec int) string {
	switch v := v.(type) {
	case float32:
		return formatNumber(v, prec)
	case bool:
		return strconv.FormatBool(v)
	case cake.Vector2:
		return "(" + formatNumber(v.X, prec) + ", " + formatNumber(v.Y, prec) + ")"
	case cake.Rect2:
		return "[" + strings.Join([]string{
			formatNumber(v.X, prec),
			formatNumber(v.Y, prec),
			formatNumber(v.Width, prec),
			formatNumber(v.Height, prec),
		}, " ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(f float32, prec int) string {
	return strconv.FormatFloat(float64(f), 'f', prec, 32)
}
