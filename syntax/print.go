package syntax

import (
	"fmt"
	"io"
	"strings"
)

// PrintOptions configures Dump's structural debug form, per §6's print
// options surface.
type PrintOptions struct {
	// Visual appends each present token's spelled text (trivia included),
	// quoted, to the end of its line.
	Visual bool
	// PrintSyntaxKind includes each node's Kind in the dump.
	PrintSyntaxKind bool
	// PrintTrivialNodeKind additionally labels tokens whose Text is empty
	// (trivia-only or missing tokens), which are otherwise easy to miss in
	// a dense tree dump.
	PrintTrivialNodeKind bool
}

// Dump writes a structural textual form of node to w: one child per
// indented line, per §6's "Debug dump" contract.
func Dump(w io.Writer, node *Raw, opts PrintOptions) error {
	return dumpNode(w, node, opts, 0)
}

func dumpNode(w io.Writer, node *Raw, opts PrintOptions, depth int) error {
	if node == nil {
		_, err := fmt.Fprintf(w, "%s<nil>\n", strings.Repeat("  ", depth))
		return err
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	if node.isToken {
		b.WriteString("Token")
	} else {
		b.WriteString("Layout")
	}
	if opts.PrintSyntaxKind {
		fmt.Fprintf(&b, "(%s)", node.kind)
	}
	if node.presence == Missing {
		b.WriteString(" missing")
	}
	fmt.Fprintf(&b, " len=%d", node.textLength)
	if node.isToken && opts.PrintTrivialNodeKind && len(node.token.text) == 0 {
		b.WriteString(" trivial")
	}
	if node.isToken && opts.Visual && node.presence == Present {
		fmt.Fprintf(&b, " %q", string(node.token.leadingTrivia)+string(node.token.text)+string(node.token.trailingTrivia))
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if !node.isToken {
		for _, c := range node.layout.children {
			if err := dumpNode(w, c, opts, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Print writes node's exact spelled source text (leading trivia + text +
// trailing trivia for tokens, concatenated in order for layouts) to w,
// reproducing the original source slice — the round-trip property
// exercised by §8 scenario S4.
func Print(w io.Writer, node *Raw) error {
	if node == nil || node.presence == Missing {
		return nil
	}
	if node.isToken {
		tok := node.token
		if _, err := w.Write(tok.leadingTrivia); err != nil {
			return err
		}
		if _, err := w.Write(tok.text); err != nil {
			return err
		}
		_, err := w.Write(tok.trailingTrivia)
		return err
	}
	for _, c := range node.layout.children {
		if err := Print(w, c); err != nil {
			return err
		}
	}
	return nil
}
