package syntax

import (
	"strings"

	"github.com/toadb/toadb/lex"
)

// Parser scans one ';'-terminated statement at a time. full is the text the
// parser was built over (used to compute error spans): a whole expression
// statement, or the text after the `table`/`domain` keyword; rest is the
// unconsumed suffix of full. Grounded on original_source/src/parser.cpp's style of
// repeatedly reslicing a string_view, translated into tracking an offset
// into an immutable Go string instead of mutating pointers.
type Parser struct {
	full string
	rest string
}

func newParser(stmt string) *Parser {
	return &Parser{full: stmt, rest: stmt}
}

func (p *Parser) offset() int { return len(p.full) - len(p.rest) }

func (p *Parser) help(span lex.Span) string {
	return lex.ErrorHelp(p.full, span)
}

func (p *Parser) spanAt(n int) lex.Span {
	start := p.offset()
	return lex.Span{Start: start, End: start + n}
}

func (p *Parser) skipWS() { p.rest = lex.TrimLeft(p.rest) }

func (p *Parser) eof() bool {
	p.skipWS()
	return len(p.rest) == 0
}

func (p *Parser) peek() byte {
	p.skipWS()
	if len(p.rest) == 0 {
		return 0
	}
	return p.rest[0]
}

func (p *Parser) consume() {
	if len(p.rest) > 0 {
		p.rest = p.rest[1:]
	}
}

// expectChar skips whitespace, checks the next byte equals want, and
// consumes it. Raises ExpectedChar otherwise.
func (p *Parser) expectChar(want byte) error {
	if p.peek() != want {
		return &ExpectedChar{Want: want, Help: p.help(p.spanAt(1))}
	}
	p.consume()
	return nil
}

// readNameRaw trims left and consumes a maximal identifier, per lex.ReadName.
func (p *Parser) readNameRaw() string {
	p.skipWS()
	name := lex.ReadName(p.rest)
	p.rest = p.rest[len(name):]
	return name
}

// expectKeyword reads a name and checks it equals want exactly.
func (p *Parser) expectKeyword(want string) bool {
	save := p.rest
	if p.readNameRaw() == want {
		return true
	}
	p.rest = save
	return false
}

// -----------------------------------------------------------------------
// Expression parsing: literals, names, operators, bound operators
// -----------------------------------------------------------------------

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseExpression parses src as a single expression, wrapped in the root
// Expression node (spec.md §4.5's "root wrapping"). Fails if src contains
// anything beyond one complete expression.
func ParseExpression(src string) (*Expr, error) {
	p := newParser(src)
	inner, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, &UnexpectedTrailingInput{Help: p.help(p.spanAt(len(p.rest)))}
	}
	return &Expr{Kind: KindExpression, Children: []*Expr{inner}}, nil
}

// parseExpr implements precedence climbing (spec.md §4.5): parse a primary,
// then repeatedly fold in operators at or above minPrec, recursing with
// prec+1 for the right-hand side so that equal-precedence operators bind
// left-associatively. This produces the same tree shape as the source's
// walk-the-right-spine-and-rotate algorithm without needing to mutate an
// already-built tree in place.
func (p *Parser) parseExpr(minPrec int) (*Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		if left.Kind == KindName {
			if c := p.peek(); c == '(' {
				return nil, &UnexpectedCall{Name: left.Text, Help: p.help(p.spanAt(1))}
			}
		}
		op, ok := p.peekOperator()
		if !ok {
			break
		}
		prec := precedence[op]
		if prec < minPrec {
			break
		}
		p.consumeToken(op)
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, &ExpectedRightOperand{Op: op, Help: p.help(p.spanAt(0))}
		}
		left = &Expr{Kind: KindOperator, Text: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) peekOperator() (string, bool) {
	p.skipWS()
	for _, op := range operatorTokens {
		if !strings.HasPrefix(p.rest, op) {
			continue
		}
		if isWordOperator(op) {
			rem := p.rest[len(op):]
			if len(rem) > 0 && lex.IsNameChar(rem[0]) {
				continue
			}
		}
		return op, true
	}
	return "", false
}

func (p *Parser) consumeToken(tok string) { p.rest = p.rest[len(tok):] }

func (p *Parser) parsePrimary() (*Expr, error) {
	p.skipWS()
	if len(p.rest) == 0 {
		return nil, &ExpectedLeftOperand{Help: p.help(p.spanAt(0))}
	}
	c := p.rest[0]
	switch {
	case c == '"':
		return p.parseQuoted('"', KindStrLiteral)
	case c == '\'':
		return p.parseQuoted('\'', KindCharLiteral)
	case c == '[':
		return p.parseBracketed('[', ']', "[]")
	case c == '(':
		return p.parseBracketed('(', ')', "()")
	case c == '<':
		return p.parseBracketed('<', '>', "<>")
	case c == '{':
		return p.parseBracketed('{', '}', "{}")
	case c == '+' || c == '-' || isDigit(c):
		return p.parseNumLiteral()
	case lex.IsNameChar(c):
		name := p.readNameRaw()
		switch name {
		case "if":
			return p.parseIfThenElse()
		case "let":
			return p.parseLetIn()
		default:
			return &Expr{Kind: KindName, Text: name}, nil
		}
	default:
		return nil, &ExpectedLeftOperand{Help: p.help(p.spanAt(1))}
	}
}

// parseQuoted reads until the matching close quote. Escape processing is not
// defined by spec.md §9's open question, so a backslash has no special
// meaning here: the first occurrence of the close quote ends the literal.
func (p *Parser) parseQuoted(quote byte, kind ExprKind) (*Expr, error) {
	start := p.offset()
	p.consume() // opening quote
	end := strings.IndexByte(p.rest, quote)
	if end < 0 {
		return nil, &ExpectedChar{Want: quote, Help: p.help(lex.Span{Start: start, End: start + len(p.rest) + 1})}
	}
	text := p.rest[:end]
	p.rest = p.rest[end+1:]
	return &Expr{Kind: kind, Text: text}, nil
}

func (p *Parser) parseNumLiteral() (*Expr, error) {
	start := p.offset()
	n := 0
	if p.rest[0] == '+' || p.rest[0] == '-' {
		n++
	}
	digits := 0
	for n+digits < len(p.rest) && isDigit(p.rest[n+digits]) {
		digits++
	}
	if digits == 0 {
		return nil, &ExpectedLeftOperand{Help: p.help(lex.Span{Start: start, End: start + n + 1})}
	}
	text := p.rest[:n+digits]
	p.rest = p.rest[n+digits:]
	return &Expr{Kind: KindNumLiteral, Text: text}, nil
}

// parseBracketed handles the bracketed bound operator forms
// "[ E (, E)* ]" / "( E (, E)* )" / "< E (, E)* >" / "{ E (, E)* }".
func (p *Parser) parseBracketed(open, close byte, tag string) (*Expr, error) {
	p.consume() // opening bracket
	var children []*Expr
	for {
		p.skipWS()
		if len(p.rest) == 0 || p.rest[0] == close {
			if len(children) == 0 {
				return nil, &ExpectedBoundOperatorNodeExpr{Op: tag, Help: p.help(p.spanAt(1))}
			}
			break
		}
		child, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		p.skipWS()
		if len(p.rest) > 0 && p.rest[0] == ',' {
			p.consume()
			continue
		}
		break
	}
	if err := p.expectChar(close); err != nil {
		return nil, err
	}
	return &Expr{Kind: KindBoundOperator, Text: tag, Children: children}, nil
}

// parseIfThenElse handles "if E then E else E".
func (p *Parser) parseIfThenElse() (*Expr, error) {
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, &ExpectedBoundOperatorNodeExpr{Op: "if", Help: p.help(p.spanAt(0))}
	}
	if !p.expectKeyword("then") {
		return nil, &ExpectedBoundOperatorClose{Op: "if", Want: "then", Help: p.help(p.spanAt(4))}
	}
	thenExpr, err := p.parseExpr(0)
	if err != nil {
		return nil, &ExpectedBoundOperatorNodeExpr{Op: "if-then", Help: p.help(p.spanAt(0))}
	}
	if !p.expectKeyword("else") {
		return nil, &ExpectedBoundOperatorClose{Op: "if-then", Want: "else", Help: p.help(p.spanAt(4))}
	}
	elseExpr, err := p.parseExpr(0)
	if err != nil {
		return nil, &ExpectedBoundOperatorNodeExpr{Op: "if-then-else", Help: p.help(p.spanAt(0))}
	}
	return &Expr{Kind: KindBoundOperator, Text: "if-then-else", Children: []*Expr{cond, thenExpr, elseExpr}}, nil
}

// parseLetIn handles "let E in E".
func (p *Parser) parseLetIn() (*Expr, error) {
	bound, err := p.parseExpr(0)
	if err != nil {
		return nil, &ExpectedBoundOperatorNodeExpr{Op: "let", Help: p.help(p.spanAt(0))}
	}
	if !p.expectKeyword("in") {
		return nil, &ExpectedBoundOperatorClose{Op: "let", Want: "in", Help: p.help(p.spanAt(2))}
	}
	body, err := p.parseExpr(0)
	if err != nil {
		return nil, &ExpectedBoundOperatorNodeExpr{Op: "let-in", Help: p.help(p.spanAt(0))}
	}
	return &Expr{Kind: KindBoundOperator, Text: "let-in", Children: []*Expr{bound, body}}, nil
}
