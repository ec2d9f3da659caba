package docparse

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
)

// Markdown parses CommonMark docstrings with goldmark, plus definition
// lists and bare URL links.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(extension.DefinitionList, extension.Linkify)),
	}
}

type mdSection struct {
	node  *doctree.Node
	level int
}

type mdBuilder struct {
	src   []byte
	doc   *doctree.Node
	stack []mdSection
}

// Parse builds the tree. A level-1 heading that opens the text becomes the
// document title; other headings nest sections by level.
func (m *Markdown) Parse(src string) *doctree.Node {
	source := []byte(src)
	root := m.md.Parser().Parse(text.NewReader(source))
	b := &mdBuilder{src: source, doc: doctree.New(doctree.KindDocument)}
	b.stack = []mdSection{{node: b.doc, level: 0}}

	first := true
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if h, ok := c.(*gmast.Heading); ok {
			if first && h.Level == 1 {
				b.doc.Append(doctree.New(doctree.KindTitle, b.inlines(h)...))
			} else {
				b.heading(h)
			}
		} else {
			b.top().Append(b.block(c))
		}
		first = false
	}
	return b.doc
}

func (b *mdBuilder) top() *doctree.Node {
	return b.stack[len(b.stack)-1].node
}

func (b *mdBuilder) heading(h *gmast.Heading) {
	// Pop until the top is a shallower heading.
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= h.Level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	sec := doctree.New(doctree.KindSection, doctree.New(doctree.KindTitle, b.inlines(h)...))
	b.top().Append(sec)
	b.stack = append(b.stack, mdSection{node: sec, level: h.Level})
}

func (b *mdBuilder) block(n gmast.Node) *doctree.Node {
	switch n := n.(type) {
	case *gmast.Paragraph, *gmast.TextBlock:
		return paragraph(b.inlines(n))
	case *gmast.Heading:
		return doctree.New(doctree.KindParagraph, doctree.New(doctree.KindStrong, b.inlines(n)...))
	case *gmast.ThematicBreak:
		return doctree.New(doctree.KindTransition)
	case *gmast.CodeBlock:
		return doctree.New(doctree.KindLiteralBlock, doctree.Text(b.lines(n)))
	case *gmast.FencedCodeBlock:
		code := doctree.New(doctree.KindDoctestBlock, doctree.Text(strings.TrimSuffix(b.lines(n), "\n")))
		if lang := n.Language(b.src); len(lang) > 0 {
			code.WithAttr("language", string(lang))
		}
		return code
	case *gmast.Blockquote:
		return b.children(doctree.New(doctree.KindBlockQuote), n)
	case *gmast.List:
		kind := doctree.KindBulletList
		if n.IsOrdered() {
			kind = doctree.KindEnumeratedList
		}
		list := doctree.New(kind)
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			list.Append(b.children(doctree.New(doctree.KindListItem), item))
		}
		return list
	case *extast.DefinitionList:
		return b.definitionList(n)
	}
	return nil
}

func (b *mdBuilder) children(dst *doctree.Node, n gmast.Node) *doctree.Node {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		dst.Append(b.block(c))
	}
	return dst
}

func (b *mdBuilder) definitionList(n *extast.DefinitionList) *doctree.Node {
	list := doctree.New(doctree.KindDefinitionList)
	var item *doctree.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *extast.DefinitionTerm:
			item = doctree.New(doctree.KindDefinitionListItem, doctree.New(doctree.KindTerm, b.inlines(c)...))
			list.Append(item)
		case *extast.DefinitionDescription:
			if item == nil {
				item = doctree.New(doctree.KindDefinitionListItem)
				list.Append(item)
			}
			item.Append(b.children(doctree.New(doctree.KindDefinition), c))
		}
	}
	return list
}

func (b *mdBuilder) lines(n gmast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(b.src))
	}
	return buf.String()
}

func (b *mdBuilder) inlines(n gmast.Node) []*doctree.Node {
	var out []*doctree.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *gmast.Text:
			v := b.unescape(c)
			if c.SoftLineBreak() || c.HardLineBreak() {
				v += "\n"
			}
			out = append(out, doctree.Text(v))
		case *gmast.String:
			out = append(out, doctree.Text(string(c.Value)))
		case *gmast.Emphasis:
			kind := doctree.KindEmphasis
			if c.Level >= 2 {
				kind = doctree.KindStrong
			}
			out = append(out, doctree.New(kind, b.inlines(c)...))
		case *gmast.CodeSpan:
			out = append(out, doctree.New(doctree.KindLiteral, doctree.Text(b.plain(c))))
		case *gmast.Link:
			out = append(out, doctree.New(doctree.KindReference, b.inlines(c)...).WithAttr("refuri", string(c.Destination)))
		case *gmast.AutoLink:
			out = append(out, doctree.New(doctree.KindReference, doctree.Text(string(c.Label(b.src)))).
				WithAttr("refuri", string(c.URL(b.src))))
		case *gmast.Image:
			out = append(out, doctree.New(doctree.KindImage).WithAttr("uri", string(c.Destination)))
		case *gmast.RawHTML:
			// dropped
		default:
			out = append(out, b.inlines(c)...)
		}
	}
	return out
}

// unescape resolves backslash escapes and character references in a text
// segment. Raw segments are returned as written.
func (b *mdBuilder) unescape(t *gmast.Text) string {
	v := t.Segment.Value(b.src)
	if t.IsRaw() {
		return string(v)
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return string(v)
}

func (b *mdBuilder) plain(n gmast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *gmast.Text:
			buf.Write(c.Segment.Value(b.src))
		case *gmast.String:
			buf.Write(c.Value)
		}
	}
	return buf.String()
}
