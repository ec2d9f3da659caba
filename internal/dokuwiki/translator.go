// Package dokuwiki renders document trees and scanned object trees as
// DokuWiki markup.
package dokuwiki

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
)

// Fixed DokuWiki tokens.
const (
	emphasisToken     = "//"
	strongToken       = "**"
	inlineLiteralOpen = "''%%"
	inlineLiteralEnd  = "%%''"
	blockLiteralOpen  = "<code>"
	blockLiteralClose = "</code>\n\n"
	subscriptOpen     = "<sub>"
	subscriptClose    = "</sub>"
	linkOpen          = "[["
	linkLabel         = "|"
	linkClose         = "]]"
	imageOpen         = "{{"
	imageClose        = "}}"
	transitionToken   = "--------\n\n"
	fieldLineBreak    = `\\ `
	unorderedMarker   = "* "
	orderedMarker     = "- "
	listStep          = "  "
)

type listMode int

const (
	listNone listMode = iota
	listUnordered
	listOrdered
)

// frame is one pending entry of the context stack: the closing text of a
// title, or the list mode to restore when a list ends.
type frame struct {
	closer string
	list   listMode
}

// Translator renders a document tree as DokuWiki markup. A Translator holds
// only its immutable Template; every Translate call gets its own traversal
// state, so one Translator may be shared between goroutines.
type Translator struct {
	tmpl Template
}

func NewTranslator(tmpl Template) *Translator {
	return &Translator{tmpl: tmpl.clone()}
}

// Translate renders root. It never fails: nodes without a rule are passed
// through, their children rendered in order with no wrapping markup.
func (t *Translator) Translate(root *doctree.Node) string {
	return t.translate(root).out.String()
}

func (t *Translator) translate(root *doctree.Node) *state {
	s := &state{
		tmpl:  &t.tmpl,
		title: cases.Title(language.Und),
		bol:   true,
	}
	if root != nil {
		s.walk(root)
	}
	return s
}

type state struct {
	tmpl  *Template
	title cases.Caser

	out strings.Builder
	bol bool

	list      listMode
	listDepth int
	indent    int
	fieldName bool
	fieldBody bool
	section   int
	literal   int
	code      bool
	context   []frame
}

func (s *state) walk(n *doctree.Node) {
	s.enter(n)
	defer s.leave(n)
	for _, c := range n.Children {
		s.walk(c)
	}
}

func (s *state) push(f frame) {
	s.context = append(s.context, f)
}

func (s *state) pop() frame {
	if len(s.context) == 0 {
		return frame{}
	}
	f := s.context[len(s.context)-1]
	s.context = s.context[:len(s.context)-1]
	return f
}

func (s *state) enter(n *doctree.Node) {
	switch n.Kind {
	case doctree.KindText:
		s.text(n.Value)
	case doctree.KindEmphasis:
		s.inline(emphasisToken)
	case doctree.KindStrong:
		s.inline(strongToken)
	case doctree.KindLiteral:
		s.inline(inlineLiteralOpen)
	case doctree.KindSubscript:
		s.inline(subscriptOpen)
	case doctree.KindLiteralBlock, doctree.KindDefinition:
		s.write(blockLiteralOpen)
		s.literal++
	case doctree.KindDoctestBlock:
		lang, ok := n.Attr("language")
		if !ok || lang == "" {
			lang = s.tmpl.CodeLanguage
		}
		if lang == "" {
			s.write("<code>\n")
		} else {
			s.write("<code " + lang + ">\n")
		}
		s.code = true
	case doctree.KindBulletList:
		s.enterList(listUnordered)
	case doctree.KindEnumeratedList:
		s.enterList(listOrdered)
	case doctree.KindBlockQuote:
		s.indent++
	case doctree.KindReference:
		if uri, ok := n.Attr("refuri"); ok {
			if s.fieldBody {
				s.inline(linkOpen)
			} else {
				s.inline(linkOpen + uri + linkLabel)
			}
		}
	case doctree.KindTitle:
		s.enterTitle(n)
	case doctree.KindSubtitle:
		s.write(marker(subtitleLen) + " ")
	case doctree.KindSection:
		s.section++
	case doctree.KindTransition:
		s.write(transitionToken)
	case doctree.KindImage:
		s.inline(imageOpen + imageLink(n) + imageClose)
	case doctree.KindFieldList:
		s.write(s.tmpl.FieldTable.Open)
	case doctree.KindField:
		s.write(s.tmpl.FieldRow.Open)
	case doctree.KindFieldName:
		s.fieldName, s.fieldBody = true, false
		s.write(s.tmpl.FieldName.Open)
	case doctree.KindFieldBody:
		s.fieldName, s.fieldBody = false, true
		s.write(s.tmpl.FieldBody.Open)
	}
}

func (s *state) leave(n *doctree.Node) {
	switch n.Kind {
	case doctree.KindEmphasis:
		s.write(emphasisToken)
	case doctree.KindStrong:
		s.write(strongToken)
	case doctree.KindLiteral:
		s.write(inlineLiteralEnd)
	case doctree.KindSubscript:
		s.write(subscriptClose)
	case doctree.KindLiteralBlock, doctree.KindDefinition:
		s.literal--
		s.write(blockLiteralClose)
	case doctree.KindDoctestBlock:
		s.code = false
		s.write("\n</code>\n\n")
	case doctree.KindParagraph:
		if !soleChildOfTightContainer(n) && !s.fieldBody {
			s.write("\n\n")
		}
	case doctree.KindBulletList, doctree.KindEnumeratedList:
		s.list = s.pop().list
		s.listDepth--
		s.write("\n")
	case doctree.KindListItem:
		s.write("\n")
	case doctree.KindBlockQuote:
		s.indent--
	case doctree.KindReference:
		s.write(linkClose)
		if n.Parent == nil || !n.Parent.Kind.TextElement() {
			s.write("\n")
		}
	case doctree.KindTitle:
		s.write(s.pop().closer)
	case doctree.KindSubtitle:
		s.write(" " + marker(subtitleLen) + "\n\n")
	case doctree.KindSection:
		s.section--
	case doctree.KindFieldList:
		s.write(s.tmpl.FieldTable.Close + "\n\n")
	case doctree.KindField:
		s.write(s.tmpl.FieldRow.Close)
	case doctree.KindFieldName:
		s.fieldName = false
		s.write(s.tmpl.FieldName.Close)
	case doctree.KindFieldBody:
		s.fieldBody = false
		s.write(s.tmpl.FieldBody.Close)
	}
}

func (s *state) enterList(mode listMode) {
	s.push(frame{list: s.list})
	s.list = mode
	s.listDepth++
}

// enterTitle writes the opening marker and pushes the closing one. The
// closer is fixed here because the section depth may change before leave.
func (s *state) enterTitle(n *doctree.Node) {
	size := documentTitleLen
	if n.Parent == nil || n.Parent.Kind != doctree.KindDocument {
		size = titleMarkerLen(s.section, s.tmpl.InitialHeaderLevel)
	}
	m := marker(size)
	s.write(m + " ")
	s.push(frame{closer: " " + m + "\n\n", list: s.list})
}

func soleChildOfTightContainer(n *doctree.Node) bool {
	p := n.Parent
	if p == nil {
		return false
	}
	return (p.Kind == doctree.KindListItem || p.Kind == doctree.KindEntry) && len(p.Children) == 1
}

func imageLink(n *doctree.Node) string {
	uri, _ := n.Attr("uri")
	size := ""
	// DokuWiki has no height-only sizing.
	if w, ok := n.Attr("width"); ok {
		size = "?" + w
		if h, ok := n.Attr("height"); ok {
			size += "x" + h
		}
	}
	link := uri + size
	align, _ := n.Attr("align")
	if align == "left" || align == "center" {
		link += " "
	}
	if align == "right" || align == "center" {
		link = " " + link
	}
	return link
}
