package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSetsParent(t *testing.T) {
	p := New(KindParagraph, Text("a"), nil, Text("b"))
	require.Len(t, p.Children, 2)
	for _, c := range p.Children {
		assert.Same(t, p, c.Parent)
	}
	assert.Equal(t, "ab", p.AsText())
}

func TestAttr(t *testing.T) {
	img := New(KindImage).WithAttr("uri", "ball.gif")
	v, ok := img.Attr("uri")
	assert.True(t, ok)
	assert.Equal(t, "ball.gif", v)
	_, ok = img.Attr("width")
	assert.False(t, ok)
	_, ok = New(KindImage).Attr("uri")
	assert.False(t, ok)
}

func TestKindNames(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.String()
		assert.NotEmpty(t, name)
		prev, dup := seen[name]
		assert.False(t, dup, "%s shared by %d and %d", name, prev, k)
		seen[name] = k
	}
	assert.Equal(t, "bullet_list", KindBulletList.String())
	assert.Equal(t, "unknown", Kind(999).String())
}

func TestWalkSkipsChildren(t *testing.T) {
	doc := New(KindDocument,
		New(KindParagraph, Text("visited")),
		New(KindLiteralBlock, Text("skipped")),
	)
	var seen []string
	doc.Walk(func(n *Node) bool {
		if n.Kind == KindText {
			seen = append(seen, n.Value)
		}
		return n.Kind != KindLiteralBlock
	})
	assert.Equal(t, []string{"visited"}, seen)
}
