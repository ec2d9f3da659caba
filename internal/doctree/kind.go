package doctree

// Kind tags a Node. The set is closed: parsers only produce these kinds and
// the translator treats KindUnknown (and anything it has no rule for) as a
// pass-through container.
type Kind int

const (
	KindUnknown Kind = iota
	KindDocument
	KindSection
	KindTitle
	KindSubtitle
	KindParagraph
	KindBulletList
	KindEnumeratedList
	KindListItem
	KindEmphasis
	KindStrong
	KindLiteral
	KindLiteralBlock
	KindSubscript
	KindBlockQuote
	KindReference
	KindImage
	KindFieldList
	KindField
	KindFieldName
	KindFieldBody
	KindDoctestBlock
	KindDefinitionList
	KindDefinitionListItem
	KindTerm
	KindDefinition
	KindTransition
	KindEntry
	KindText

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:            "unknown",
	KindDocument:           "document",
	KindSection:            "section",
	KindTitle:              "title",
	KindSubtitle:           "subtitle",
	KindParagraph:          "paragraph",
	KindBulletList:         "bullet_list",
	KindEnumeratedList:     "enumerated_list",
	KindListItem:           "list_item",
	KindEmphasis:           "emphasis",
	KindStrong:             "strong",
	KindLiteral:            "literal",
	KindLiteralBlock:       "literal_block",
	KindSubscript:          "subscript",
	KindBlockQuote:         "block_quote",
	KindReference:          "reference",
	KindImage:              "image",
	KindFieldList:          "field_list",
	KindField:              "field",
	KindFieldName:          "field_name",
	KindFieldBody:          "field_body",
	KindDoctestBlock:       "doctest_block",
	KindDefinitionList:     "definition_list",
	KindDefinitionListItem: "definition_list_item",
	KindTerm:               "term",
	KindDefinition:         "definition",
	KindTransition:         "transition",
	KindEntry:              "entry",
	KindText:               "text",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindUnknown; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// TextElement reports whether nodes of this kind hold running text. A
// reference whose parent is not a text element is a standalone block link.
func (k Kind) TextElement() bool {
	switch k {
	case KindParagraph, KindTitle, KindSubtitle, KindLiteralBlock, KindDoctestBlock,
		KindEmphasis, KindStrong, KindLiteral, KindSubscript, KindReference,
		KindFieldName, KindTerm:
		return true
	}
	return false
}
