package docparse

import (
	"regexp"
	"strings"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
)

var fieldStart = regexp.MustCompile(`^:([^:]+):(?:\s+(.*))?$`)

// fieldList converts inline content into a field list when its first line
// starts with ":name:". Later lines starting with ":name:" open new fields;
// any other line continues the previous field body.
func fieldList(inlines []*doctree.Node) (*doctree.Node, bool) {
	lines := splitLines(inlines)
	if len(lines) == 0 {
		return nil, false
	}
	if _, _, ok := fieldHead(lines[0]); !ok {
		return nil, false
	}
	list := doctree.New(doctree.KindFieldList)
	var body *doctree.Node
	for _, line := range lines {
		if name, rest, ok := fieldHead(line); ok {
			body = doctree.New(doctree.KindParagraph, rest...)
			list.Append(doctree.New(doctree.KindField,
				doctree.New(doctree.KindFieldName, doctree.Text(name)),
				doctree.New(doctree.KindFieldBody, body),
			))
			continue
		}
		line = trimLeading(line)
		if len(line) == 0 {
			continue
		}
		body.Append(doctree.Text("\n"))
		body.Append(line...)
	}
	return list, true
}

// splitLines breaks inline content at newlines found in top-level text
// nodes. Inline containers are kept whole.
func splitLines(inlines []*doctree.Node) [][]*doctree.Node {
	var lines [][]*doctree.Node
	var cur []*doctree.Node
	for _, n := range inlines {
		if n.Kind != doctree.KindText {
			cur = append(cur, n)
			continue
		}
		parts := strings.Split(n.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			if part != "" {
				cur = append(cur, doctree.Text(part))
			}
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func fieldHead(line []*doctree.Node) (string, []*doctree.Node, bool) {
	line = trimLeading(line)
	if len(line) == 0 || line[0].Kind != doctree.KindText {
		return "", nil, false
	}
	m := fieldStart.FindStringSubmatch(line[0].Value)
	if m == nil {
		return "", nil, false
	}
	var rest []*doctree.Node
	if m[2] != "" {
		rest = append(rest, doctree.Text(m[2]))
	}
	rest = append(rest, line[1:]...)
	return strings.TrimSpace(m[1]), trimLeading(rest), true
}

func trimLeading(line []*doctree.Node) []*doctree.Node {
	for len(line) > 0 && line[0].Kind == doctree.KindText {
		v := strings.TrimLeft(line[0].Value, " \t")
		if v != "" {
			line = append([]*doctree.Node{doctree.Text(v)}, line[1:]...)
			break
		}
		line = line[1:]
	}
	return line
}
