// Command toadbfmt parses a DDL/expression source file and prints its
// statement tree. It is a single-shot formatter, not the interactive
// CLI/REPL that sits outside the scope of this module (see SPEC_FULL.md
// §1): it reads once, parses once, prints once, and exits.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/toadb/toadb/syntax"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	src, err := readSource(os.Args[1:])
	if err != nil {
		logger.Error("failed to read source", "error", err)
		os.Exit(1)
	}

	tree, err := syntax.Parse(src)
	if err != nil {
		logger.Error("parse failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Debug("parsed statements", "count", len(tree.Statements))
	fmt.Println(tree.String())
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
