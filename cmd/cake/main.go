// Package main provides the command line evaluator for the cake kernel.
//
// Usage:
//
//	cake scalar <fn> [args...]             Evaluate a scalar function
//	cake vec <op> <x> <y> [...]            Evaluate a Vector2 operation
//	cake rect <op> <x> <y> <w> <h> [...]   Evaluate a Rect2 operation
//	cake batch [file]                      Evaluate one command per line
//	cake list                              List every operation
//	cake version                           Print version information
//
// Examples:
//
//	cake scalar pow 2 14.14
//	cake vec move 0 0 10 10 1 1
//	cake rect sub-left 0 0 100 40 20
//	cake -p 2 scalar wrap -5 -4 -2
//	cake batch ops.txt
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
