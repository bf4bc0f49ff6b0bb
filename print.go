package wisp

import "strconv"

// Print renders an expression back into wisp source text, reproducing
// the operator precedence of the tree it was parsed from without
// introducing parentheses the original didn't have: a Grouping node
// prints its own parens, and every other node prints its operator
// between its operands exactly as it appears in source. Reparsing the
// result climbs precedence the same way the original parse did, so the
// two trees come out identical.
//
// This exists to support the round-trip property: print(parse(src))
// reparses to a tree equal to parse(src) modulo spans.
func Print(e Expr) string {
	switch n := e.(type) {
	case *NumberLit:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	case *StringLit:
		return `"` + n.Value + `"`
	case *BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
	case *NilLit:
		return "nil"
	case *IdentExpr:
		return n.Name
	case *Grouping:
		return "(" + Print(n.Inner) + ")"
	case *Unary:
		return n.Op.String() + Print(n.Operand)
	case *Binary:
		return Print(n.Left) + " " + n.Op.String() + " " + Print(n.Right)
	case *Logical:
		return Print(n.Left) + " " + n.Op.String() + " " + Print(n.Right)
	default:
		return "<unprintable expr>"
	}
}

// stripSpans walks a parsed Expr and returns a copy of the tree with every
// CodeSpan zeroed out, so two trees parsed from differently-spelled (but
// structurally identical) source can be compared with reflect.DeepEqual
// or cmp.Diff without span noise.
func stripSpans(e Expr) Expr {
	zero := CodeSpan{}
	switch n := e.(type) {
	case *NumberLit:
		return &NumberLit{Value: n.Value, Sp: zero}
	case *StringLit:
		return &StringLit{Value: n.Value, Sp: zero}
	case *BoolLit:
		return &BoolLit{Value: n.Value, Sp: zero}
	case *NilLit:
		return &NilLit{Sp: zero}
	case *IdentExpr:
		return &IdentExpr{Name: n.Name, Sp: zero}
	case *Grouping:
		return &Grouping{Inner: stripSpans(n.Inner), Sp: zero}
	case *Unary:
		return &Unary{Op: n.Op, OpSpan: zero, Operand: stripSpans(n.Operand)}
	case *Binary:
		return &Binary{Op: n.Op, OpSpan: zero, Left: stripSpans(n.Left), Right: stripSpans(n.Right)}
	case *Logical:
		return &Logical{Op: n.Op, OpSpan: zero, Left: stripSpans(n.Left), Right: stripSpans(n.Right)}
	default:
		return e
	}
}

// parseExprString parses src as a single bare expression statement and
// returns its Expr, for use by tests that only care about the
// expression grammar.
func parseExprString(src string) (Expr, Diagnostics) {
	tokens, diags := Scan(src + ";")
	if diags != nil {
		return nil, diags
	}
	prog, diags := Parse(tokens)
	if diags != nil {
		return nil, diags
	}
	stmt := prog.Decls[0].(*ExprStmt)
	return stmt.Expr, nil
}
