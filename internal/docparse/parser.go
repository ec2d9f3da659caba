// Package docparse parses docstrings into document trees. Two syntaxes are
// supported: Go doc comments and Markdown.
package docparse

import (
	"fmt"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
)

// Syntax names a docstring markup language.
type Syntax string

const (
	SyntaxGoDoc    Syntax = "godoc"
	SyntaxMarkdown Syntax = "markdown"
)

// Syntaxes lists the supported syntaxes.
func Syntaxes() []Syntax {
	return []Syntax{SyntaxGoDoc, SyntaxMarkdown}
}

// Parser converts docstring text into a tree rooted at a KindDocument node.
type Parser interface {
	Parse(src string) *doctree.Node
}

// New returns the parser for syntax. The empty syntax selects Go doc comments.
func New(syntax Syntax) (Parser, error) {
	switch syntax {
	case SyntaxGoDoc, "":
		return NewGoDoc(), nil
	case SyntaxMarkdown:
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unknown docstring syntax %q", syntax)
	}
}

// paragraph wraps inline content, or returns a field list when the content
// is written as ":name: body" lines.
func paragraph(inlines []*doctree.Node) *doctree.Node {
	if len(inlines) == 0 {
		return nil
	}
	if fl, ok := fieldList(inlines); ok {
		return fl
	}
	return doctree.New(doctree.KindParagraph, inlines...)
}
