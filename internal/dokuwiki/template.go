package dokuwiki

import (
	"maps"
	"slices"
)

// Enclosure is an open/close token pair written around a rendered block.
type Enclosure struct {
	Open  string
	Close string
}

// Template holds every token the translator and assembler emit that is not
// fixed by DokuWiki syntax itself. A Template is copied on construction of a
// Translator or Assembler, so later changes to the caller's value have no
// effect on them.
type Template struct {
	// FieldTable wraps a whole field list, FieldRow each field, FieldName
	// and FieldBody the two columns of a field row.
	FieldTable Enclosure
	FieldRow   Enclosure
	FieldName  Enclosure
	FieldBody  Enclosure

	// ObjectEnclosure wraps every object block written by the Assembler.
	ObjectEnclosure Enclosure

	// FieldTranslate maps known field names to display labels. Matching
	// names skip prefix stripping.
	FieldTranslate map[string]string

	// ParamPrefixes are stripped from field names, leaving the parameter name.
	ParamPrefixes []string

	IndentUnit         string
	InitialHeaderLevel int

	// CodeLanguage tags code blocks that carry no language of their own.
	CodeLanguage string
}

// DefaultTemplate returns the built-in DokuWiki template.
func DefaultTemplate() Template {
	return Template{
		FieldTable:      Enclosure{},
		FieldRow:        Enclosure{Open: "", Close: "|\n"},
		FieldName:       Enclosure{Open: "^ ", Close: "  "},
		FieldBody:       Enclosure{Open: "| ", Close: "  "},
		ObjectEnclosure: Enclosure{Open: "\n-----\n\n", Close: ""},
		FieldTranslate: map[string]string{
			"returns": "Returns",
			"return":  "Returns",
			"rtype":   "Return type",
			"raises":  "Raises",
		},
		ParamPrefixes:      []string{"param ", "parameter ", "arg ", "argument ", "key ", "keyword "},
		IndentUnit:         "    ",
		InitialHeaderLevel: 1,
		CodeLanguage:       "go",
	}
}

func (t Template) clone() Template {
	t.FieldTranslate = maps.Clone(t.FieldTranslate)
	t.ParamPrefixes = slices.Clone(t.ParamPrefixes)
	if t.InitialHeaderLevel < 1 {
		t.InitialHeaderLevel = 1
	}
	return t
}
