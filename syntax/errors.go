package syntax

import "fmt"

// Every parser error carries the source excerpt produced by lex.ErrorHelp so
// a caller can print a caret-underlined diagnostic without re-deriving the
// span (spec.md §4.4/§7). Grounded on domain/errors.go's family-of-structs
// taxonomy.

// ExpectedTableName is raised when `table` is not followed by an identifier.
type ExpectedTableName struct{ Help string }

func (e *ExpectedTableName) Error() string { return "syntax: expected table name\n" + e.Help }

// ExpectedChar is raised when a specific single-character token is missing.
type ExpectedChar struct {
	Want byte
	Help string
}

func (e *ExpectedChar) Error() string {
	return fmt.Sprintf("syntax: expected %q\n%s", e.Want, e.Help)
}

// ExpectedFieldName is raised when a table field's name is missing.
type ExpectedFieldName struct{ Help string }

func (e *ExpectedFieldName) Error() string { return "syntax: expected field name\n" + e.Help }

// ExpectedTableFieldDomainName is raised when a table field's `(Domain)` name is missing.
type ExpectedTableFieldDomainName struct{ Help string }

func (e *ExpectedTableFieldDomainName) Error() string {
	return "syntax: expected table field domain name\n" + e.Help
}

// ExpectedTableFieldRuleName is raised when a rule token's name is missing.
type ExpectedTableFieldRuleName struct{ Help string }

func (e *ExpectedTableFieldRuleName) Error() string {
	return "syntax: expected table field rule name\n" + e.Help
}

// ExpectedTableFieldRuleType is raised when a rule name is not followed by one of ? @ !.
type ExpectedTableFieldRuleType struct{ Help string }

func (e *ExpectedTableFieldRuleType) Error() string {
	return "syntax: expected table field rule type ('?', '@', or '!')\n" + e.Help
}

// ExpectedDomainName is raised when `domain` is not followed by an identifier.
type ExpectedDomainName struct{ Help string }

func (e *ExpectedDomainName) Error() string { return "syntax: expected domain name\n" + e.Help }

// ExpectedDomainWalrus is raised when a domain name is not followed by `:=`.
type ExpectedDomainWalrus struct{ Help string }

func (e *ExpectedDomainWalrus) Error() string { return "syntax: expected ':='\n" + e.Help }

// ExpectFields is raised when a domain body's field list is malformed: an
// empty field name, an empty referenced domain name, or `&` and `|` mixed at
// the same level.
type ExpectFields struct {
	Reason string
	Help   string
}

func (e *ExpectFields) Error() string {
	return fmt.Sprintf("syntax: malformed domain field list: %s\n%s", e.Reason, e.Help)
}

// ExpectedLeftOperand is raised when an expression is expected but no
// literal, name, or opening bracket is found.
type ExpectedLeftOperand struct{ Help string }

func (e *ExpectedLeftOperand) Error() string { return "syntax: expected left operand\n" + e.Help }

// ExpectedRightOperand is raised when a binary operator is not followed by a
// well-formed right-hand expression.
type ExpectedRightOperand struct {
	Op   string
	Help string
}

func (e *ExpectedRightOperand) Error() string {
	return fmt.Sprintf("syntax: expected right operand of %q\n%s", e.Op, e.Help)
}

// UnexpectedCall is raised when a name is immediately followed by '(' with
// no operator between them; this grammar has no function-call syntax.
type UnexpectedCall struct {
	Name string
	Help string
}

func (e *UnexpectedCall) Error() string {
	return fmt.Sprintf("syntax: unexpected call of %q: this grammar has no call syntax\n%s", e.Name, e.Help)
}

// ExpectedBoundOperatorNodeExpr is raised when a bound operator's required
// intermediate expression is missing (e.g. `if then ... else ...`).
type ExpectedBoundOperatorNodeExpr struct {
	Op   string
	Help string
}

func (e *ExpectedBoundOperatorNodeExpr) Error() string {
	return fmt.Sprintf("syntax: %s: expected expression\n%s", e.Op, e.Help)
}

// ExpectedBoundOperatorClose is raised when a keyword-bound operator's
// closing keyword is missing (e.g. `if ... then ...` with no `else`).
// Bracketed forms ([]/()/<>/{}) raise ExpectedChar instead, per spec.md §4.5.
type ExpectedBoundOperatorClose struct {
	Op   string
	Want string
	Help string
}

func (e *ExpectedBoundOperatorClose) Error() string {
	return fmt.Sprintf("syntax: %s: expected %q\n%s", e.Op, e.Want, e.Help)
}

// UnexpectedTrailingInput is raised when an expression statement has
// unconsumed content after a complete expression was parsed. Not part of the
// diagnostic list named in spec.md §7, but every read_stmt slice must be
// fully consumed by exactly one statement parse.
type UnexpectedTrailingInput struct{ Help string }

func (e *UnexpectedTrailingInput) Error() string {
	return "syntax: unexpected trailing input after expression\n" + e.Help
}
