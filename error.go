package wisp

import "fmt"

// DiagnosticKind is the closed taxonomy of things that can go wrong while
// scanning, parsing, or evaluating a program.
type DiagnosticKind int

const (
	DiagIllegalCharacter DiagnosticKind = iota
	DiagUnterminatedString
	DiagUnexpectedToken
	DiagUnexpectedEndOfInput
	DiagBinaryOperatorTypeError
	DiagUnaryOperatorTypeError
	DiagIdentifierNotDefined
	DiagTypeError
)

var diagnosticKindNames = map[DiagnosticKind]string{
	DiagIllegalCharacter:        "IllegalCharacter",
	DiagUnterminatedString:      "UnterminatedString",
	DiagUnexpectedToken:         "UnexpectedToken",
	DiagUnexpectedEndOfInput:    "UnexpectedEndOfInput",
	DiagBinaryOperatorTypeError: "BinaryOperatorTypeError",
	DiagUnaryOperatorTypeError:  "UnaryOperatorTypeError",
	DiagIdentifierNotDefined:    "IdentifierNotDefined",
	DiagTypeError:               "TypeError",
}

func (k DiagnosticKind) String() string {
	if name, ok := diagnosticKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is a single structured error produced by the scanner, the
// parser, or the evaluator. It carries the source span(s) involved
// rather than a copy of the source text, so that a driver holding the
// original source string can quote the offending text (see Render).
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Span    CodeSpan
	// ExtraSpans holds any additional spans relevant to the diagnostic,
	// e.g. the left/right operand spans of a BinaryOperatorTypeError.
	ExtraSpans []CodeSpan
}

// Error satisfies the error interface with a location-only summary; it
// does not quote source text since a bare Diagnostic has no access to
// the original source string. Use Render for a source-quoting report.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[%s | Line %d Col %d] %s", d.Kind, d.Span.Start.Line, d.Span.Start.Column, d.Message)
}

// Render produces a human-readable report that quotes the source slice
// covered by Span from src, the original source string. ExtraSpans are
// not quoted.
func (d *Diagnostic) Render(src string) string {
	out := d.Error()
	if slice := d.Span.Slice(src); slice != "" {
		out += fmt.Sprintf("\n  --> %q", slice)
	}
	return out
}

// Diagnostics is a non-empty collection of Diagnostic produced by a
// single scan, parse, or evaluation pass. It implements error so a
// caller that only cares about success/failure can treat it uniformly.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	if len(ds) == 1 {
		return ds[0].Error()
	}
	out := fmt.Sprintf("%d diagnostics:", len(ds))
	for _, d := range ds {
		out += "\n  " + d.Error()
	}
	return out
}

// Render renders every diagnostic against src, joined by blank lines.
func (ds Diagnostics) Render(src string) string {
	out := ""
	for i, d := range ds {
		if i > 0 {
			out += "\n\n"
		}
		out += d.Render(src)
	}
	return out
}
