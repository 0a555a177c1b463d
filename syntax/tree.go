// Package syntax produces a tagged-union syntax tree from DDL/expression
// source text: a sequence of statements, each a table definition, a domain
// definition, or a bare expression (spec.md §3/§4.5). Grounded on
// original_source/src/parser.cpp's Top_Level_Statement/Syntax_Tree and
// hivekit's pkg/ast.Tree, which likewise owns its source bytes and a tree of
// nodes borrowing from them.
package syntax

import (
	"github.com/toadb/toadb/lex"
)

// Tree owns the source text and the statements parsed from it. Every string
// field in a Statement is a slice of Source, so the tree must outlive any
// value derived from it (spec.md §3).
type Tree struct {
	Source     string
	Statements []Statement
}

// Statement is the tagged union of top-level forms: *TableDef, *DomainDef,
// or *ExpressionStmt.
type Statement interface {
	statementNode()
}

// TableField is one field of a TableDef: a name, its domain's name, and any
// attached rules (validator/display/generator tokens).
type TableField struct {
	Name       string
	DomainName string
	Rules      []Rule
}

// RuleKind distinguishes the three rule-token markers (spec.md §3).
type RuleKind byte

const (
	RuleValidator RuleKind = iota // trailing '?'
	RuleDisplay                   // trailing '@'
	RuleGenerator                 // trailing '!'
)

func (k RuleKind) String() string {
	switch k {
	case RuleValidator:
		return "validator"
	case RuleDisplay:
		return "display"
	case RuleGenerator:
		return "generator"
	default:
		return "?"
	}
}

// Rule is one `<name><?|@|!>` token attached to a table field.
type Rule struct {
	Name string
	Kind RuleKind
}

// TableDef is a `table <Name> { <field>, … }` statement.
type TableDef struct {
	Name   string
	Fields []TableField
}

func (*TableDef) statementNode() {}

// DomainVariant distinguishes the three domain-body shapes a DomainDef may declare.
type DomainVariant byte

const (
	DomainAlias DomainVariant = iota
	DomainMul
	DomainAdd
)

func (v DomainVariant) String() string {
	switch v {
	case DomainAlias:
		return "Alias"
	case DomainMul:
		return "Mul"
	case DomainAdd:
		return "Add"
	default:
		return "?"
	}
}

// DomainField is one field of a DomainDef's body. DomainName is empty (and
// HasDomain false) for a tagless Add case. An Alias carries exactly one
// field, whose Name is the referent domain's name.
type DomainField struct {
	Name       string
	DomainName string
	HasDomain  bool
}

// DomainDef is a `domain <Name> := <body>` statement.
type DomainDef struct {
	Name    string
	Variant DomainVariant
	Fields  []DomainField
}

func (*DomainDef) statementNode() {}

// ExpressionStmt is any statement that does not begin with the `table` or
// `domain` keyword (spec.md §4.5).
type ExpressionStmt struct {
	Expr *Expr
}

func (*ExpressionStmt) statementNode() {}

// Parse splits source into ';'-terminated statements and parses each in
// turn, in the style of original_source/src/parser.cpp's parse(): read a
// statement, dispatch on its leading keyword, append the result, advance.
// The first error aborts parsing (spec.md §4.5's "no recovery" policy).
func Parse(source string) (*Tree, error) {
	source, err := lex.TrimSource(source)
	if err != nil {
		return nil, err
	}
	tree := &Tree{Source: source}
	rest := source
	for {
		stmt := lex.ReadStmt(rest)
		trimmedLen := len(rest) - len(lex.TrimLeft(rest))
		body := trimmed(stmt)
		if body == "" {
			break
		}
		st, err := parseStatement(body)
		if err != nil {
			return nil, err
		}
		tree.Statements = append(tree.Statements, st)
		rest = rest[trimmedLen+len(stmt):]
	}
	return tree, nil
}

func trimmed(stmt string) string {
	s := lex.TrimLeft(stmt)
	if len(s) > 0 && s[len(s)-1] == ';' {
		s = s[:len(s)-1]
	}
	return lex.TrimLeft(s)
}

func parseStatement(body string) (Statement, error) {
	if startsWithKeyword(body, "table") {
		return parseTableDef(body[len("table"):])
	}
	if startsWithKeyword(body, "domain") {
		return parseDomainDef(body[len("domain"):])
	}
	expr, err := ParseExpression(body)
	if err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expr: expr}, nil
}

func startsWithKeyword(s, kw string) bool {
	if len(s) < len(kw) || s[:len(kw)] != kw {
		return false
	}
	if len(s) == len(kw) {
		return true
	}
	return !lex.IsNameChar(s[len(kw)])
}

func parseTableDef(rest string) (*TableDef, error) {
	p := newParser(rest)
	name := p.readNameRaw()
	if name == "" {
		return nil, &ExpectedTableName{Help: p.help(p.spanAt(1))}
	}
	if err := p.expectChar('{'); err != nil {
		return nil, err
	}

	var fields []TableField
	for {
		if p.peek() == '}' {
			p.consume()
			break
		}
		field, err := parseTableField(p)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if p.peek() == ',' {
			p.consume()
			continue
		}
		if err := p.expectChar('}'); err != nil {
			return nil, err
		}
		break
	}
	return &TableDef{Name: name, Fields: fields}, nil
}

func parseTableField(p *Parser) (TableField, error) {
	name := p.readNameRaw()
	if name == "" {
		return TableField{}, &ExpectedFieldName{Help: p.help(p.spanAt(1))}
	}
	if err := p.expectChar('('); err != nil {
		return TableField{}, err
	}
	domainName := p.readNameRaw()
	if domainName == "" {
		return TableField{}, &ExpectedTableFieldDomainName{Help: p.help(p.spanAt(1))}
	}
	if err := p.expectChar(')'); err != nil {
		return TableField{}, err
	}

	var rules []Rule
	if p.peek() == ':' {
		p.consume()
		for {
			p.skipWS()
			ruleName := lex.ReadName(p.rest)
			if ruleName == "" {
				return TableField{}, &ExpectedTableFieldRuleName{Help: p.help(p.spanAt(1))}
			}
			p.rest = p.rest[len(ruleName):]
			if len(p.rest) == 0 || !lex.IsRuleType(p.rest[0]) {
				return TableField{}, &ExpectedTableFieldRuleType{Help: p.help(p.spanAt(1))}
			}
			kind := ruleKindOf(p.rest[0])
			p.consume()
			rules = append(rules, Rule{Name: ruleName, Kind: kind})

			p.skipWS()
			if len(p.rest) > 0 && lex.IsNameChar(p.rest[0]) {
				continue
			}
			break
		}
	}
	return TableField{Name: name, DomainName: domainName, Rules: rules}, nil
}

func ruleKindOf(c byte) RuleKind {
	switch c {
	case '@':
		return RuleDisplay
	case '!':
		return RuleGenerator
	default:
		return RuleValidator
	}
}

func parseDomainDef(rest string) (*DomainDef, error) {
	p := newParser(rest)
	name := p.readNameRaw()
	if name == "" {
		return nil, &ExpectedDomainName{Help: p.help(p.spanAt(1))}
	}
	if !p.matchWalrus() {
		return nil, &ExpectedDomainWalrus{Help: p.help(p.spanAt(2))}
	}

	variant, fields, err := parseDomainBody(p)
	if err != nil {
		return nil, err
	}
	return &DomainDef{Name: name, Variant: variant, Fields: fields}, nil
}

func (p *Parser) matchWalrus() bool {
	p.skipWS()
	if len(p.rest) >= 2 && p.rest[0] == ':' && p.rest[1] == '=' {
		p.rest = p.rest[2:]
		return true
	}
	return false
}

func parseDomainBody(p *Parser) (DomainVariant, []DomainField, error) {
	var fields []DomainField
	var sep byte
	for {
		p.skipWS()
		name := p.readNameRaw()
		if name == "" {
			return 0, nil, &ExpectFields{Reason: "expected a field or case name", Help: p.help(p.spanAt(1))}
		}
		field := DomainField{Name: name}

		if p.peek() == '(' {
			p.consume()
			domainName := p.readNameRaw()
			if domainName == "" {
				return 0, nil, &ExpectFields{Reason: "expected a domain name in parentheses", Help: p.help(p.spanAt(1))}
			}
			if err := p.expectChar(')'); err != nil {
				return 0, nil, err
			}
			field.DomainName = domainName
			field.HasDomain = true
		}
		fields = append(fields, field)

		if p.eof() {
			break
		}
		c := p.peek()
		if c == '&' || c == '|' {
			if sep != 0 && sep != c {
				return 0, nil, &ExpectFields{Reason: "cannot mix '&' and '|' in the same domain body", Help: p.help(p.spanAt(1))}
			}
			sep = c
			p.consume()
			continue
		}
		break
	}

	switch {
	case sep == '&':
		return DomainMul, fields, nil
	case sep == '|':
		return DomainAdd, fields, nil
	case len(fields) == 1 && fields[0].HasDomain:
		return DomainMul, fields, nil
	case len(fields) == 1:
		return DomainAlias, fields, nil
	default:
		return 0, nil, &ExpectFields{Reason: "empty domain body", Help: p.help(p.spanAt(1))}
	}
}
