// Package wisp implements a tree-walking interpreter for a small
// dynamically-typed scripting language in the Lox family.
//
// The pipeline is leaves-first: a hand-written character-by-character
// scanner produces tokens, a recursive-descent parser builds a program
// from those tokens, and a tree-walking evaluator runs the program
// against a lexically scoped Environment. All three stages share the
// Location/CodeSpan model so that diagnostics can quote the offending
// source text by byte range.
//
// A tiny example:
//
//	interp := wisp.NewInterpreter()
//	val, err := interp.InterpretSrcStr(`var a = 1; a + 41;`)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(val.Display()) // Output: 42
//
// See cmd/wisp for the command-line driver (file and prompt modes).
package wisp
