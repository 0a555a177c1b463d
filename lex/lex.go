// Package lex implements the lexical primitives statements and expressions
// are built from (spec.md §4.4): trimming, statement splitting on ';', and
// identifier scanning. Grounded on original_source/src/parser.cpp's
// trim_left/read_until/read_stmt/read_name/is_name_char, translated from
// std::string_view slicing into Go's native string slicing (both are
// non-owning views over the backing bytes).
package lex

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TrimSource strips a leading UTF-8 or UTF-16 byte-order mark from src, if
// present, before lexing starts, reusing the same transform.Bytes idiom
// hivekit uses to re-encode legacy text (internal/regtext/reg_parser.go), so
// a BOM-prefixed .toad source file parses the same as one without.
func TrimSource(src string) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, []byte(src))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// TrimLeft skips leading space, tab, CR, and LF.
func TrimLeft(s string) string {
	start := 0
	for start < len(s) {
		switch s[start] {
		case ' ', '\t', '\r', '\n':
			start++
		default:
			return s[start:]
		}
	}
	return s[start:]
}

// ReadUntil returns the prefix of s up to and including the first byte equal
// to sep, or all of s if sep does not occur.
func ReadUntil(s string, sep byte) string {
	end := 0
	for end < len(s) {
		c := s[end]
		end++
		if c == sep {
			break
		}
	}
	return s[:end]
}

// ReadStmt returns the next ';'-terminated statement, after trimming leading
// whitespace (spec.md §4.4: read_until(trim_left(s), ';')).
func ReadStmt(s string) string {
	return ReadUntil(TrimLeft(s), ';')
}

// IsNameChar reports whether c may appear within an identifier: alphanumeric
// or underscore.
func IsNameChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ReadName trims left, then consumes a maximal run of identifier characters.
// The grammar does not require the first character to be non-digit (spec.md
// §4.4's open question is resolved permissively, matching
// original_source/src/parser.cpp's read_name, which applies is_name_char
// uniformly from the first character).
func ReadName(s string) string {
	s = TrimLeft(s)
	end := 0
	for end < len(s) && IsNameChar(s[end]) {
		end++
	}
	return s[:end]
}

// IsRuleType reports whether c is one of the three rule-kind markers: '?'
// (validator), '@' (display), '!' (generator).
func IsRuleType(c byte) bool {
	return c == '?' || c == '@' || c == '!'
}
