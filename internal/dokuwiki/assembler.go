package dokuwiki

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentflare-ai/go-dokuwiki/internal/doctree"
	"github.com/agentflare-ai/go-dokuwiki/internal/objtree"
)

// DocParser turns docstring text into a document tree.
type DocParser interface {
	Parse(doc string) *doctree.Node
}

// Focus names a single class and/or function to document.
//
// Setting either field suppresses the root object's docstring; children are
// still all rendered.
type Focus struct {
	Class    string
	Function string
}

func (f Focus) empty() bool {
	return f.Class == "" && f.Function == ""
}

// Assembler renders scanned object trees as nested DokuWiki blocks, one per
// object, translating each docstring through a Translator.
type Assembler struct {
	tmpl       Template
	parser     DocParser
	translator *Translator
}

func NewAssembler(tmpl Template, parser DocParser) *Assembler {
	tmpl = tmpl.clone()
	return &Assembler{
		tmpl:       tmpl,
		parser:     parser,
		translator: NewTranslator(tmpl),
	}
}

// Render writes d and its children. level selects the header size of d;
// each child level is one deeper.
func (a *Assembler) Render(d *objtree.Descriptor, level int, focus Focus) string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	a.render(&b, cases.Title(language.Und), d, level, focus)
	return b.String()
}

func (a *Assembler) render(b *strings.Builder, title cases.Caser, d *objtree.Descriptor, level int, focus Focus) {
	m := marker(objectMarkerLen(level))
	b.WriteString(a.tmpl.ObjectEnclosure.Open)
	b.WriteString(m + " " + d.Name + " " + m + "\n")
	b.WriteString(emphasisToken + strongToken + title.String(d.Kind.String()) + strongToken + emphasisToken + "\n\n")
	if focus.empty() && d.Doc != "" {
		b.WriteString(a.TranslateDoc(d.Doc))
		b.WriteString("\n\n")
	}
	for _, c := range d.Children {
		a.render(b, title, c, level+1, Focus{})
	}
	b.WriteString(a.tmpl.ObjectEnclosure.Close)
}

// TranslateDoc parses and translates a single docstring.
func (a *Assembler) TranslateDoc(doc string) string {
	if a.parser == nil {
		return doc
	}
	return a.translator.Translate(a.parser.Parse(doc))
}
