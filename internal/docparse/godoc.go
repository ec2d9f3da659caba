package docparse

import (
	"go/doc/comment"
	"strings"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
)

// DefaultLinkBase resolves [Name] and [pkg.Name] doc links.
const DefaultLinkBase = "https://pkg.go.dev"

// GoDoc parses Go doc comments. Each heading opens a section holding the
// blocks that follow it; code blocks become language-tagged code blocks.
type GoDoc struct {
	LinkBase string
}

func NewGoDoc() *GoDoc {
	return &GoDoc{LinkBase: DefaultLinkBase}
}

func (g *GoDoc) Parse(src string) *doctree.Node {
	var p comment.Parser
	d := p.Parse(src)
	doc := doctree.New(doctree.KindDocument)
	cur := doc
	for _, b := range d.Content {
		if h, ok := b.(*comment.Heading); ok {
			cur = doctree.New(doctree.KindSection, doctree.New(doctree.KindTitle, g.inlines(h.Text)...))
			doc.Append(cur)
			continue
		}
		cur.Append(g.block(b))
	}
	return doc
}

func (g *GoDoc) block(b comment.Block) *doctree.Node {
	switch b := b.(type) {
	case *comment.Paragraph:
		return paragraph(g.inlines(b.Text))
	case *comment.Code:
		return doctree.New(doctree.KindDoctestBlock, doctree.Text(strings.TrimSuffix(b.Text, "\n")))
	case *comment.List:
		kind := doctree.KindBulletList
		if len(b.Items) > 0 && b.Items[0].Number != "" {
			kind = doctree.KindEnumeratedList
		}
		list := doctree.New(kind)
		for _, it := range b.Items {
			item := doctree.New(doctree.KindListItem)
			for _, c := range it.Content {
				item.Append(g.block(c))
			}
			list.Append(item)
		}
		return list
	case *comment.Heading:
		return doctree.New(doctree.KindParagraph, doctree.New(doctree.KindStrong, g.inlines(b.Text)...))
	}
	return nil
}

func (g *GoDoc) inlines(texts []comment.Text) []*doctree.Node {
	out := make([]*doctree.Node, 0, len(texts))
	for _, t := range texts {
		switch t := t.(type) {
		case comment.Plain:
			out = append(out, doctree.Text(string(t)))
		case comment.Italic:
			out = append(out, doctree.New(doctree.KindEmphasis, doctree.Text(string(t))))
		case *comment.Link:
			out = append(out, doctree.New(doctree.KindReference, g.inlines(t.Text)...).WithAttr("refuri", t.URL))
		case *comment.DocLink:
			base := g.LinkBase
			if base == "" {
				base = DefaultLinkBase
			}
			out = append(out, doctree.New(doctree.KindReference, g.inlines(t.Text)...).WithAttr("refuri", t.DefaultURL(base)))
		}
	}
	return out
}
