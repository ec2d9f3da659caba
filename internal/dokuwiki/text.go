package dokuwiki

import "strings"

func (s *state) write(str string) {
	if str == "" {
		return
	}
	s.out.WriteString(str)
	s.bol = str[len(str)-1] == '\n'
}

func (s *state) verbatim() bool {
	return s.literal > 0 || s.code
}

// inline writes an inline token, preceded by the line prefix when it opens
// a new output line.
func (s *state) inline(tok string) {
	s.linePrefix()
	s.write(tok)
}

func (s *state) text(value string) {
	if value == "" {
		return
	}
	switch {
	case s.fieldName:
		value = s.fieldLabel(value)
	case s.fieldBody:
		value = strings.ReplaceAll(value, "\n", fieldLineBreak)
	}
	if s.verbatim() {
		s.write(value)
		return
	}
	s.linePrefix()
	s.write(strings.ReplaceAll(value, "\n", s.continuation()))
}

// linePrefix writes the indentation and, inside a list, the item marker of
// a fresh output line.
func (s *state) linePrefix() {
	if !s.bol || s.verbatim() {
		return
	}
	prefix := strings.Repeat(s.tmpl.IndentUnit, s.indent)
	switch s.list {
	case listUnordered:
		prefix += strings.Repeat(listStep, s.listDepth) + unorderedMarker
	case listOrdered:
		prefix += strings.Repeat(listStep, s.listDepth) + orderedMarker
	}
	s.write(prefix)
}

// continuation replaces embedded newlines so wrapped lines align under the
// text of the current list marker.
func (s *state) continuation() string {
	c := "\n" + strings.Repeat(s.tmpl.IndentUnit, s.indent)
	if s.list != listNone {
		c += strings.Repeat(listStep, s.listDepth) + listStep
	}
	return c
}

func (s *state) fieldLabel(name string) string {
	if label, ok := s.tmpl.FieldTranslate[name]; ok {
		name = label
	} else {
		for _, p := range s.tmpl.ParamPrefixes {
			if strings.HasPrefix(name, p) {
				name = name[len(p):]
				break
			}
		}
	}
	return s.title.String(name)
}
