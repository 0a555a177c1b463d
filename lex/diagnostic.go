package lex

import (
	"strings"
)

// Span identifies a byte range [Start, End) within a source string.
type Span struct {
	Start int
	End   int
}

// ErrorHelp renders a multi-line diagnostic pointing at span within full:
// the source line containing span, followed by a caret-underlined line
// beneath it (spec.md §4.4's error_help). If span crosses a newline, only
// the underline for its first line is drawn.
func ErrorHelp(full string, span Span) string {
	if span.Start < 0 {
		span.Start = 0
	}
	if span.End > len(full) {
		span.End = len(full)
	}
	if span.End < span.Start {
		span.End = span.Start
	}

	lineStart := strings.LastIndexByte(full[:span.Start], '\n') + 1
	lineEnd := strings.IndexByte(full[span.Start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(full)
	} else {
		lineEnd += span.Start
	}
	line := full[lineStart:lineEnd]

	underlineEnd := span.End
	if underlineEnd > lineEnd {
		underlineEnd = lineEnd
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	for i := lineStart; i < span.Start; i++ {
		b.WriteByte(' ')
	}
	width := underlineEnd - span.Start
	if width < 1 {
		width = 1
	}
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}
