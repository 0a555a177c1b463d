package syntax

// ExprKind tags the node kinds of an expression tree (spec.md §4.5):
// Name, StrLiteral, CharLiteral, NumLiteral, Operator, BoundOperator, and
// the root-wrapping Expression kind.
type ExprKind byte

const (
	KindName ExprKind = iota
	KindStrLiteral
	KindCharLiteral
	KindNumLiteral
	KindOperator
	KindBoundOperator
	KindExpression
)

func (k ExprKind) String() string {
	switch k {
	case KindName:
		return "Name"
	case KindStrLiteral:
		return "StrLiteral"
	case KindCharLiteral:
		return "CharLiteral"
	case KindNumLiteral:
		return "NumLiteral"
	case KindOperator:
		return "Operator"
	case KindBoundOperator:
		return "BoundOperator"
	case KindExpression:
		return "Expression"
	default:
		return "?"
	}
}

// Expr is one node of an expression tree. Unlike original_source's
// pointer-juggling arena (spec.md §9's "arena + index" design note), nodes
// here are held directly by pointer: Go's garbage collector already gives
// every node a stable address and a well-defined lifetime, so the
// arena-and-index indirection the source needed to survive manual memory
// management buys nothing here.
//
// Text carries the literal payload, identifier, or operator symbol
// depending on Kind. Left/Right are populated only for KindOperator.
// Children holds a bound operator's nested expressions, or — for the root
// KindExpression wrapper — the single wrapped child.
type Expr struct {
	Kind     ExprKind
	Text     string
	Left     *Expr
	Right    *Expr
	Children []*Expr
}

// precedence maps each binary operator to its level, low binds loosest
// (spec.md §4.5). Word operators ("with", "as") are matched only when not
// immediately followed by another identifier character, so they are never
// confused with a longer name.
var precedence = map[string]int{
	":=": 0, "=": 0,
	"==": 1, "!=": 1, "<=": 1, ">=": 1, "<": 1, ">": 1,
	"+": 3, "-": 3,
	"*": 4, "/": 4,
	"**": 5, "^": 5, "with": 5, "as": 5,
	"@": 6,
}

// operatorTokens lists every recognized operator token, multi-character
// tokens before single-character ones, so that greedy prefix matching picks
// ":=" over "=" and "**" over "*".
var operatorTokens = []string{
	":=", "==", "!=", "<=", ">=", "**",
	"with", "as",
	"=", "<", ">", "+", "-", "*", "/", "^", "@",
}

func isWordOperator(op string) bool {
	switch op {
	case "with", "as":
		return true
	default:
		return false
	}
}
