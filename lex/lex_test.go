package lex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toadb/toadb/lex"
)

func TestTrimLeft(t *testing.T) {
	require.Equal(t, "abc", lex.TrimLeft("  \t\n\rabc"))
	require.Equal(t, "", lex.TrimLeft("   "))
	require.Equal(t, "a b", lex.TrimLeft("a b"))
}

func TestReadUntil(t *testing.T) {
	require.Equal(t, "abc;", lex.ReadUntil("abc;def", ';'))
	require.Equal(t, "abcdef", lex.ReadUntil("abcdef", ';'))
}

func TestReadStmt(t *testing.T) {
	require.Equal(t, "table Foo { };", lex.ReadStmt("   table Foo { }; domain Bar := U8;"))
}

func TestReadName(t *testing.T) {
	require.Equal(t, "foo_bar2", lex.ReadName("  foo_bar2(U8)"))
	require.Equal(t, "", lex.ReadName("  ("))
}

func TestIsRuleType(t *testing.T) {
	for _, c := range []byte{'?', '@', '!'} {
		require.True(t, lex.IsRuleType(c))
	}
	require.False(t, lex.IsRuleType('x'))
}

func TestErrorHelp(t *testing.T) {
	src := "table Foo {\n  bad field\n};"
	idx := len("table Foo {\n  ")
	got := lex.ErrorHelp(src, lex.Span{Start: idx, End: idx + 3})
	require.Equal(t, "  bad field\n  ^^^", got)
}

func TestTrimSourceStripsUTF8BOM(t *testing.T) {
	src := "\xef\xbb\xbftable Foo { f(U8) };"
	got, err := lex.TrimSource(src)
	require.NoError(t, err)
	require.Equal(t, "table Foo { f(U8) };", got)
}

func TestTrimSourceLeavesPlainSourceUnchanged(t *testing.T) {
	src := "table Foo { f(U8) };"
	got, err := lex.TrimSource(src)
	require.NoError(t, err)
	require.Equal(t, src, got)
}
