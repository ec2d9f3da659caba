package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
)

// find returns every node of kind below root in document order.
func find(root *doctree.Node, kind doctree.Kind) []*doctree.Node {
	var out []*doctree.Node
	root.Walk(func(n *doctree.Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

func TestNewSelectsParser(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &GoDoc{}, p)

	p, err = New(SyntaxMarkdown)
	require.NoError(t, err)
	assert.IsType(t, &Markdown{}, p)

	_, err = New("rst")
	assert.Error(t, err)
	assert.Equal(t, []Syntax{SyntaxGoDoc, SyntaxMarkdown}, Syntaxes())
}

func TestFieldListFromParagraph(t *testing.T) {
	fl, ok := fieldList([]*doctree.Node{doctree.Text(":param name: who to greet\n  and why\n:returns: a value")})
	require.True(t, ok)
	require.Len(t, fl.Children, 2)

	first := fl.Children[0]
	assert.Equal(t, doctree.KindField, first.Kind)
	assert.Equal(t, "param name", first.Children[0].AsText())
	assert.Equal(t, "who to greet\nand why", first.Children[1].AsText())
	assert.Equal(t, "returns", fl.Children[1].Children[0].AsText())
	assert.Equal(t, "a value", fl.Children[1].Children[1].AsText())

	_, ok = fieldList([]*doctree.Node{doctree.Text("not :a: field")})
	assert.False(t, ok)
}

func TestFieldListEmptyBody(t *testing.T) {
	fl, ok := fieldList([]*doctree.Node{doctree.Text(":deprecated:")})
	require.True(t, ok)
	require.Len(t, fl.Children, 1)
	assert.Equal(t, "deprecated", fl.Children[0].Children[0].AsText())
	assert.Equal(t, "", fl.Children[0].Children[1].AsText())
}

func TestGoDocParse(t *testing.T) {
	src := "Intro with https://example.com inside.\n\n" +
		"# Usage\n\n" +
		"Call it:\n\n" +
		"\tx := Run()\n\n" +
		"Options:\n\n" +
		"  - one\n  - two\n\n" +
		":param x: the input\n:returns: the output\n"
	doc := NewGoDoc().Parse(src)
	require.Equal(t, doctree.KindDocument, doc.Kind)
	require.Len(t, doc.Children, 2)
	assert.Equal(t, doctree.KindParagraph, doc.Children[0].Kind)

	refs := find(doc.Children[0], doctree.KindReference)
	require.Len(t, refs, 1)
	uri, _ := refs[0].Attr("refuri")
	assert.Equal(t, "https://example.com", uri)

	sec := doc.Children[1]
	require.Equal(t, doctree.KindSection, sec.Kind)
	assert.Equal(t, doctree.KindTitle, sec.Children[0].Kind)
	assert.Equal(t, "Usage", sec.Children[0].AsText())

	code := find(sec, doctree.KindDoctestBlock)
	require.Len(t, code, 1)
	assert.Equal(t, "x := Run()", code[0].AsText())

	items := find(sec, doctree.KindListItem)
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].AsText())
	assert.Len(t, find(sec, doctree.KindBulletList), 1)

	fields := find(sec, doctree.KindField)
	require.Len(t, fields, 2)
	assert.Equal(t, "param x", fields[0].Children[0].AsText())
}

func TestGoDocEnumeratedList(t *testing.T) {
	doc := NewGoDoc().Parse("Steps:\n\n  1. first\n  2. second\n")
	assert.Len(t, find(doc, doctree.KindEnumeratedList), 1)
	assert.Len(t, find(doc, doctree.KindListItem), 2)
}

func TestMarkdownParse(t *testing.T) {
	src := "# Title\n\n" +
		"Intro *em* and **strong** `code`.\n\n" +
		"## Part\n\n" +
		"- a\n- b\n\n" +
		"```go\nx := 1\n```\n\n" +
		"> quoted\n\n" +
		"Term\n: Meaning\n\n" +
		"---\n\n" +
		"### Deeper\n\n" +
		"See https://example.com now.\n\n" +
		"## Sibling\n\n" +
		"1. first\n"
	doc := NewMarkdown().Parse(src)

	require.NotEmpty(t, doc.Children)
	assert.Equal(t, doctree.KindTitle, doc.Children[0].Kind)
	assert.Equal(t, "Title", doc.Children[0].AsText())

	intro := doc.Children[1]
	require.Equal(t, doctree.KindParagraph, intro.Kind)
	assert.Len(t, find(intro, doctree.KindEmphasis), 1)
	assert.Len(t, find(intro, doctree.KindStrong), 1)
	lit := find(intro, doctree.KindLiteral)
	require.Len(t, lit, 1)
	assert.Equal(t, "code", lit[0].AsText())

	sections := find(doc, doctree.KindSection)
	require.Len(t, sections, 3)
	part, deeper, sibling := sections[0], sections[1], sections[2]
	assert.Equal(t, "Part", part.Children[0].AsText())
	assert.Equal(t, part, deeper.Parent, "level-3 heading nests under level-2")
	assert.Equal(t, doc, sibling.Parent, "same-level heading closes the previous section")

	assert.Len(t, find(part, doctree.KindBulletList), 1)
	code := find(part, doctree.KindDoctestBlock)
	require.Len(t, code, 1)
	lang, _ := code[0].Attr("language")
	assert.Equal(t, "go", lang)
	assert.Equal(t, "x := 1", code[0].AsText())

	assert.Len(t, find(part, doctree.KindBlockQuote), 1)
	assert.Len(t, find(part, doctree.KindTransition), 1)

	terms := find(part, doctree.KindTerm)
	require.Len(t, terms, 1)
	assert.Equal(t, "Term", terms[0].AsText())
	assert.Len(t, find(part, doctree.KindDefinition), 1)

	refs := find(deeper, doctree.KindReference)
	require.Len(t, refs, 1)
	uri, _ := refs[0].Attr("refuri")
	assert.Equal(t, "https://example.com", uri)

	assert.Len(t, find(sibling, doctree.KindEnumeratedList), 1)
}

func TestMarkdownHeadingNotFirstIsSection(t *testing.T) {
	doc := NewMarkdown().Parse("Intro.\n\n# Later\n\nBody.\n")
	titles := find(doc, doctree.KindTitle)
	require.Len(t, titles, 1)
	assert.Equal(t, doctree.KindSection, titles[0].Parent.Kind)
	assert.Equal(t, "Later", titles[0].AsText())
}

func TestMarkdownFieldList(t *testing.T) {
	doc := NewMarkdown().Parse(":param a: first\n:returns: nothing\n")
	fields := find(doc, doctree.KindField)
	require.Len(t, fields, 2)
	assert.Equal(t, "first", fields[0].Children[1].AsText())
}

func TestMarkdownFieldBodiesMatchGoDoc(t *testing.T) {
	src := ":param a: first\n:returns: nothing\n"
	for _, p := range []Parser{NewMarkdown(), NewGoDoc()} {
		fields := find(p.Parse(src), doctree.KindField)
		require.Len(t, fields, 2)
		body := fields[0].Children[1]
		assert.Equal(t, "first", body.AsText())
		texts := find(body, doctree.KindText)
		require.NotEmpty(t, texts)
		assert.Equal(t, "first", texts[0].Value)
		assert.Equal(t, "nothing", fields[1].Children[1].AsText())
	}
}

func TestMarkdownResolvesEscapes(t *testing.T) {
	doc := NewMarkdown().Parse("a \\*b\\* &amp; c &#35;1\n")
	require.Len(t, doc.Children, 1)
	assert.Equal(t, "a *b* & c #1", doc.Children[0].AsText())
	assert.Empty(t, find(doc, doctree.KindEmphasis))

	lit := find(NewMarkdown().Parse("`\\*raw\\* &amp;`\n"), doctree.KindLiteral)
	require.Len(t, lit, 1)
	assert.Equal(t, "\\*raw\\* &amp;", lit[0].AsText())
}
