package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toadb/toadb/syntax"
)

func unwrap(t *testing.T, e *syntax.Expr) *syntax.Expr {
	t.Helper()
	require.Equal(t, syntax.KindExpression, e.Kind)
	require.Len(t, e.Children, 1)
	return e.Children[0]
}

// Grounded on original_source/src/parser.cpp's precedence table and
// spec.md §8 scenario 6.
func TestOperatorPrecedence(t *testing.T) {
	expr, err := syntax.ParseExpression("a + b + c * g ** e + d")
	require.NoError(t, err)
	root := unwrap(t, expr)

	require.Equal(t, syntax.KindOperator, root.Kind)
	require.Equal(t, "+", root.Text)
	require.Equal(t, "N:d", syntax.RenderExpr(root.Right))

	middle := root.Left
	require.Equal(t, "+", middle.Text)
	require.Equal(t, "N:a", syntax.RenderExpr(middle.Left.Left))
	require.Equal(t, "N:b", syntax.RenderExpr(middle.Left.Right))

	mulNode := middle.Right
	require.Equal(t, syntax.KindOperator, mulNode.Kind)
	require.Equal(t, "*", mulNode.Text)
	require.Equal(t, "N:c", syntax.RenderExpr(mulNode.Left))

	powNode := mulNode.Right
	require.Equal(t, "**", powNode.Text)
	require.Equal(t, "N:g", syntax.RenderExpr(powNode.Left))
	require.Equal(t, "N:e", syntax.RenderExpr(powNode.Right))
}

func TestBoundOperatorIfThenElse(t *testing.T) {
	expr, err := syntax.ParseExpression(`if a == b then "yes" else "no"`)
	require.NoError(t, err)
	root := unwrap(t, expr)
	require.Equal(t, syntax.KindBoundOperator, root.Kind)
	require.Equal(t, "if-then-else", root.Text)
	require.Len(t, root.Children, 3)
	require.Equal(t, "O:==(N:a, N:b)", syntax.RenderExpr(root.Children[0]))
	require.Equal(t, "L:yes", syntax.RenderExpr(root.Children[1]))
	require.Equal(t, "L:no", syntax.RenderExpr(root.Children[2]))
}

func TestBoundOperatorLetIn(t *testing.T) {
	expr, err := syntax.ParseExpression("let x := 5 in x * 2")
	require.NoError(t, err)
	root := unwrap(t, expr)
	require.Equal(t, "let-in", root.Text)
	require.Len(t, root.Children, 2)
}

func TestBracketedList(t *testing.T) {
	expr, err := syntax.ParseExpression("[1, 2, 3]")
	require.NoError(t, err)
	root := unwrap(t, expr)
	require.Equal(t, "[]", root.Text)
	require.Len(t, root.Children, 3)
}

func TestUnterminatedBracketRaisesExpectedChar(t *testing.T) {
	_, err := syntax.ParseExpression("[1, 2")
	require.Error(t, err)
	require.IsType(t, &syntax.ExpectedChar{}, err)
}

func TestTableDef(t *testing.T) {
	tree, err := syntax.Parse(`table Person { name(Str): not_null? uuid!, age(I32) };`)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)

	def, ok := tree.Statements[0].(*syntax.TableDef)
	require.True(t, ok)
	require.Equal(t, "Person", def.Name)
	require.Len(t, def.Fields, 2)

	name := def.Fields[0]
	require.Equal(t, "name", name.Name)
	require.Equal(t, "Str", name.DomainName)
	require.Len(t, name.Rules, 2)
	require.Equal(t, "not_null", name.Rules[0].Name)
	require.Equal(t, syntax.RuleValidator, name.Rules[0].Kind)
	require.Equal(t, "uuid", name.Rules[1].Name)
	require.Equal(t, syntax.RuleGenerator, name.Rules[1].Kind)

	age := def.Fields[1]
	require.Equal(t, "age", age.Name)
	require.Equal(t, "I32", age.DomainName)
	require.Empty(t, age.Rules)
}

func TestDomainDefAlias(t *testing.T) {
	tree, err := syntax.Parse("domain Day := U8;")
	require.NoError(t, err)
	def := tree.Statements[0].(*syntax.DomainDef)
	require.Equal(t, syntax.DomainAlias, def.Variant)
	require.Equal(t, "U8", def.Fields[0].Name)
}

func TestDomainDefMul(t *testing.T) {
	tree, err := syntax.Parse("domain Vector2 := x(F32) & y(F32);")
	require.NoError(t, err)
	def := tree.Statements[0].(*syntax.DomainDef)
	require.Equal(t, syntax.DomainMul, def.Variant)
	require.Len(t, def.Fields, 2)
	require.Equal(t, "x", def.Fields[0].Name)
	require.Equal(t, "F32", def.Fields[0].DomainName)
}

func TestDomainDefAdd(t *testing.T) {
	tree, err := syntax.Parse("domain Month := jan | feb | mar;")
	require.NoError(t, err)
	def := tree.Statements[0].(*syntax.DomainDef)
	require.Equal(t, syntax.DomainAdd, def.Variant)
	require.Len(t, def.Fields, 3)
	require.False(t, def.Fields[0].HasDomain)
}

func TestDomainDefMixedSeparatorsRejected(t *testing.T) {
	_, err := syntax.Parse("domain Bad := a(U8) & b | c;")
	require.Error(t, err)
	require.IsType(t, &syntax.ExpectFields{}, err)
}

func TestExpressionStatement(t *testing.T) {
	tree, err := syntax.Parse("a + b;")
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	_, ok := tree.Statements[0].(*syntax.ExpressionStmt)
	require.True(t, ok)
}

func TestMultipleStatements(t *testing.T) {
	tree, err := syntax.Parse(`
		table T { f(U8) };
		domain D := U8;
		a + b;
	`)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 3)
}

func TestUnexpectedCall(t *testing.T) {
	_, err := syntax.ParseExpression("foo(1)")
	require.Error(t, err)
	require.IsType(t, &syntax.UnexpectedCall{}, err)
}

func TestParseStripsLeadingBOM(t *testing.T) {
	tree, err := syntax.Parse("\xef\xbb\xbftable T { f(U8) };")
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	_, ok := tree.Statements[0].(*syntax.TableDef)
	require.True(t, ok)
}
