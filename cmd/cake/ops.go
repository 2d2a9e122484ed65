package main

import (
	"slices"

	"github.com/samber/lo"

	"github.com/grindlemire/cake"
)

const (
	kindScalar = "scalar"
	kindVec    = "vec"
	kindRect   = "rect"
)

var kindTitles = map[string]string{
	kindScalar: "scalar",
	kindVec:    "Vector2",
	kindRect:   "Rect2",
}

// output is one labelled value produced by an operation. value holds a
// float32, bool, cake.Vector2 or cake.Rect2.
type output struct {
	label string
	value any
}

// op is a registered operation taking a fixed number of float arguments.
type op struct {
	arity int
	usage string
	run   func(a []float32) []output
}

var registries = map[string]map[string]op{
	kindScalar: scalarOps,
	kindVec:    vecOps,
	kindRect:   rectOps,
}

func result(v any) []output {
	return []output{{label: "result", value: v}}
}

func unary(fn func(float32) float32) op {
	return op{arity: 1, usage: "<n>", run: func(a []float32) []output {
		return result(fn(a[0]))
	}}
}

func binary(usage string, fn func(float32, float32) float32) op {
	return op{arity: 2, usage: usage, run: func(a []float32) []output {
		return result(fn(a[0], a[1]))
	}}
}

func ternary(usage string, fn func(float32, float32, float32) float32) op {
	return op{arity: 3, usage: usage, run: func(a []float32) []output {
		return result(fn(a[0], a[1], a[2]))
	}}
}

var scalarOps = map[string]op{
	"min":               binary("<a> <b>", cake.Min),
	"max":               binary("<a> <b>", cake.Max),
	"sign":              unary(cake.Sign),
	"abs":               unary(cake.Abs),
	"trunc":             unary(cake.Trunc),
	"floor":             unary(cake.Floor),
	"ceil":              unary(cake.Ceil),
	"round":             unary(cake.Round),
	"sqrt":              unary(cake.Sqrt),
	"exp":               unary(cake.Exp),
	"ln":                unary(cake.Ln),
	"pow":               binary("<x> <n>", cake.Pow),
	"clamp":             ternary("<n> <a> <b>", cake.Clamp),
	"wrap":              ternary("<n> <a> <b>", cake.Wrap),
	"stepify":           binary("<n> <step>", cake.Stepify),
	"lerp":              ternary("<a> <b> <w>", cake.Lerp),
	"smoothstep":        ternary("<a> <b> <w>", cake.Smoothstep),
	"smootherstep":      ternary("<a> <b> <w>", cake.Smootherstep),
	"ease-in-cubic":     unary(cake.EaseInCubic),
	"ease-out-cubic":    unary(cake.EaseOutCubic),
	"ease-in-out-cubic": unary(cake.EaseInOutCubic),
	"move":              ternary("<a> <b> <delta>", cake.Move),
	"move-with": {arity: 4, usage: "<a> <b> <delta> <slowdown>", run: func(a []float32) []output {
		return result(cake.MoveWith(a[0], a[1], a[2], a[3]))
	}},
}

func vec(a []float32, i int) cake.Vector2 {
	return cake.NewVector2(a[i], a[i+1])
}

func vecPair(fn func(v, o cake.Vector2) cake.Vector2) op {
	return op{arity: 4, usage: "<x1> <y1> <x2> <y2>", run: func(a []float32) []output {
		return result(fn(vec(a, 0), vec(a, 2)))
	}}
}

var vecOps = map[string]op{
	"new": {arity: 2, usage: "<x> <y>", run: func(a []float32) []output {
		return result(vec(a, 0))
	}},
	"length": {arity: 2, usage: "<x> <y>", run: func(a []float32) []output {
		return result(vec(a, 0).Length())
	}},
	"normalized": {arity: 2, usage: "<x> <y>", run: func(a []float32) []output {
		return result(vec(a, 0).Normalized())
	}},
	"add":       vecPair(cake.Vector2.Add),
	"sub":       vecPair(cake.Vector2.Sub),
	"mul":       vecPair(cake.Vector2.Mul),
	"div":       vecPair(cake.Vector2.Div),
	"direction": vecPair(cake.Vector2.Direction),
	"move": {arity: 6, usage: "<x> <y> <tx> <ty> <dx> <dy>", run: func(a []float32) []output {
		return result(vec(a, 0).Move(vec(a, 2), vec(a, 4)))
	}},
	"move-with": {arity: 7, usage: "<x> <y> <tx> <ty> <dx> <dy> <slowdown>", run: func(a []float32) []output {
		return result(vec(a, 0).MoveWith(vec(a, 2), vec(a, 4), a[6]))
	}},
}

func rect(a []float32, i int) cake.Rect2 {
	return cake.NewRect2(a[i], a[i+1], a[i+2], a[i+3])
}

const (
	rectUsage       = "<x> <y> <w> <h>"
	rectAmountUsage = rectUsage + " <amount>"
	rectPairUsage   = rectUsage + " <x2> <y2> <w2> <h2>"
)

// edgeOp reports both the mutated rectangle and the returned strip.
func edgeOp(fn func(r *cake.Rect2, amount float32) cake.Rect2) op {
	return op{arity: 5, usage: rectAmountUsage, run: func(a []float32) []output {
		r := rect(a, 0)
		delta := fn(&r, a[4])
		return []output{{label: "rect", value: r}, {label: "delta", value: delta}}
	}}
}

func pairedOp(fn func(r *cake.Rect2, amount float32)) op {
	return op{arity: 5, usage: rectAmountUsage, run: func(a []float32) []output {
		r := rect(a, 0)
		fn(&r, a[4])
		return []output{{label: "rect", value: r}}
	}}
}

func stripOp(fn func(r cake.Rect2, amount float32) cake.Rect2) op {
	return op{arity: 5, usage: rectAmountUsage, run: func(a []float32) []output {
		return []output{{label: "strip", value: fn(rect(a, 0), a[4])}}
	}}
}

var rectOps = map[string]op{
	"new": {arity: 4, usage: rectUsage, run: func(a []float32) []output {
		return result(rect(a, 0))
	}},
	"has-point": {arity: 6, usage: rectUsage + " <px> <py>", run: func(a []float32) []output {
		return result(rect(a, 0).HasPoint(vec(a, 4)))
	}},
	"has-intersection": {arity: 8, usage: rectPairUsage, run: func(a []float32) []output {
		return result(rect(a, 0).HasIntersection(rect(a, 4)))
	}},
	"intersection": {arity: 8, usage: rectPairUsage, run: func(a []float32) []output {
		return result(rect(a, 0).Intersection(rect(a, 4)))
	}},
	"merger": {arity: 8, usage: rectPairUsage, run: func(a []float32) []output {
		return result(rect(a, 0).Merger(rect(a, 4)))
	}},
	"add-left":       edgeOp((*cake.Rect2).AddLeft),
	"add-right":      edgeOp((*cake.Rect2).AddRight),
	"add-top":        edgeOp((*cake.Rect2).AddTop),
	"add-bottom":     edgeOp((*cake.Rect2).AddBottom),
	"sub-left":       edgeOp((*cake.Rect2).SubLeft),
	"sub-right":      edgeOp((*cake.Rect2).SubRight),
	"sub-top":        edgeOp((*cake.Rect2).SubTop),
	"sub-bottom":     edgeOp((*cake.Rect2).SubBottom),
	"add-left-right": pairedOp((*cake.Rect2).AddLeftRight),
	"add-top-bottom": pairedOp((*cake.Rect2).AddTopBottom),
	"add-all":        pairedOp((*cake.Rect2).AddAll),
	"sub-left-right": pairedOp((*cake.Rect2).SubLeftRight),
	"sub-top-bottom": pairedOp((*cake.Rect2).SubTopBottom),
	"sub-all":        pairedOp((*cake.Rect2).SubAll),
	"left":           stripOp(cake.Rect2.LeftStrip),
	"right":          stripOp(cake.Rect2.RightStrip),
	"top":            stripOp(cake.Rect2.TopStrip),
	"bottom":         stripOp(cake.Rect2.BottomStrip),
}

func opNames(kind string) []string {
	names := lo.Keys(registries[kind])
	slices.Sort(names)
	return names
}
