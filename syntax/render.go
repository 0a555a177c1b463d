package syntax

import (
	"strings"
)

// RenderExpr prints expr's tree with the prefix tags named in spec.md §4.5:
// `L:` for literals, `N:` for names, `O:` for operators (including bound
// operators), with child arguments parenthesized. The root Expression
// wrapper renders transparently as its single child.
func RenderExpr(e *Expr) string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindExpression:
		if len(e.Children) == 0 {
			return ""
		}
		return RenderExpr(e.Children[0])
	case KindStrLiteral, KindCharLiteral, KindNumLiteral:
		return "L:" + e.Text
	case KindName:
		return "N:" + e.Text
	case KindOperator:
		return "O:" + e.Text + "(" + RenderExpr(e.Left) + ", " + RenderExpr(e.Right) + ")"
	case KindBoundOperator:
		var b strings.Builder
		b.WriteString("O:")
		b.WriteString(e.Text)
		b.WriteString("(")
		for i, c := range e.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(RenderExpr(c))
		}
		b.WriteString(")")
		return b.String()
	default:
		return ""
	}
}

// String renders the statement tree for debugging/display, grouping
// statements one per line.
func (t *Tree) String() string {
	var b strings.Builder
	for i, st := range t.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		switch s := st.(type) {
		case *TableDef:
			b.WriteString("table " + s.Name)
		case *DomainDef:
			b.WriteString("domain " + s.Name + " := " + s.Variant.String())
		case *ExpressionStmt:
			b.WriteString(RenderExpr(s.Expr))
		}
	}
	return b.String()
}
