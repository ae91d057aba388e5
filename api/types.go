// Package api holds the in-memory model of the documented roc-toolkit C API:
// definitions extracted from the Doxygen export, their documentation trees,
// and resolved cross-references.
//
// Everything here is built once during extraction and read-only afterwards.
// Generation is a pure read over this model.
package api

// DocItemKind discriminates the closed set of documentation item variants.
type DocItemKind int

const (
	// ItemText is a plain text span.
	ItemText DocItemKind = iota
	// ItemRef is a cross-reference token (e.g. "roc_sender_write()").
	ItemRef
	// ItemCode is an inline code span; its text may also be a reference token.
	ItemCode
	// ItemBold is a bold text span.
	ItemBold
	// ItemEmphasis is an emphasized text span.
	ItemEmphasis
	// ItemList is an itemized list; each list entry is a child block.
	ItemList
	// ItemSee is a "see also" marker.
	ItemSee
)

// String returns the kind name as it appears in the Doxygen schema.
func (k DocItemKind) String() string {
	switch k {
	case ItemText:
		return "text"
	case ItemRef:
		return "ref"
	case ItemCode:
		return "code"
	case ItemBold:
		return "bold"
	case ItemEmphasis:
		return "emphasis"
	case ItemList:
		return "list"
	case ItemSee:
		return "see"
	default:
		return "unknown"
	}
}

// DocItem is a single formatting unit: a chunk of bold text, a code
// reference, or just plain text. List items are hierarchical and carry
// child blocks, one block per list entry.
type DocItem struct {
	Kind DocItemKind
	// Text carries the literal content for text/ref/code/bold/emphasis items.
	// For ref and code items it is also the key used for reference resolution.
	Text string
	// Blocks carries the child blocks of a list item, in source order.
	Blocks []DocBlock
}

// DocBlock is a sequence of successive items, e.g. one paragraph or one
// list entry.
type DocBlock struct {
	Items []DocItem
}

// DocComment is the documentation attached to a definition or one of its
// members. The first block is the brief description; the remaining blocks
// form the detailed description, in source order.
type DocComment struct {
	Blocks []DocBlock
}

// Brief returns the short-form summary block. It is always present, though
// it may contain zero items.
func (c DocComment) Brief() DocBlock {
	if len(c.Blocks) == 0 {
		return DocBlock{}
	}
	return c.Blocks[0]
}

// RefKind discriminates the closed set of resolved reference variants.
type RefKind int

const (
	// RefEnum is a reference to an enum type (e.g. "roc_interface").
	RefEnum RefKind = iota
	// RefEnumValue is a reference to an enumerated constant
	// (e.g. "ROC_INTERFACE_AUDIO_SOURCE").
	RefEnumValue
	// RefStruct is a reference to a struct type (e.g. "roc_sender_config").
	RefStruct
	// RefStructField is a reference to a struct field (e.g. "packet_length").
	RefStructField
	// RefClass is a reference to a class type (e.g. "roc_sender").
	RefClass
	// RefClassMethod is a reference to a class method
	// (e.g. "roc_sender_write()").
	RefClassMethod
	// RefTypedef is a bare named type with no further structure
	// (e.g. "roc_slot").
	RefTypedef
)

// String returns the kind name used in logs.
func (k RefKind) String() string {
	switch k {
	case RefEnum:
		return "enum"
	case RefEnumValue:
		return "enum_value"
	case RefStruct:
		return "struct"
	case RefStructField:
		return "struct_field"
	case RefClass:
		return "class"
	case RefClassMethod:
		return "class_method"
	case RefTypedef:
		return "typedef"
	default:
		return "unknown"
	}
}

// DocRef is the resolved semantic classification of a cross-reference token.
// For example, "roc_sender_write()" resolves to a DocRef with kind
// RefClassMethod, ClassName "roc_sender" and MethodName "write".
type DocRef struct {
	Kind RefKind
	// Name is the raw token as it appeared in the documentation.
	Name string
	// EnumName and EnumValue are set for RefEnumValue: the owning enum and
	// the bare value suffix with the enum's prefix stripped.
	EnumName  string
	EnumValue string
	// ClassName and MethodName are set for RefClassMethod.
	ClassName  string
	MethodName string
}

// EnumValue is one enumerated constant. Value preserves the literal source
// initializer, including its radix (e.g. "0x00020000").
type EnumValue struct {
	Name  string
	Value string
	Doc   DocComment
}

// EnumDefinition is one documented C enum.
type EnumDefinition struct {
	Name   string
	Values []EnumValue
	Doc    DocComment
}

// StructField is one documented struct field. Type is the declared C type
// token, either a primitive ("unsigned int") or a roc_ namespaced name.
type StructField struct {
	Name string
	Type string
	Doc  DocComment
}

// StructDefinition is one documented C struct.
type StructDefinition struct {
	Name   string
	Fields []StructField
	Doc    DocComment
}

// ClassMethod is one documented function belonging to a class-like group.
type ClassMethod struct {
	Name string
	Doc  DocComment
}

// ClassDefinition is one documented class-like group: an opaque handle
// typedef plus the free functions operating on it.
type ClassDefinition struct {
	Name    string
	Methods []ClassMethod
	Doc     DocComment
}

// GitInfo identifies the exact source-library revision the documentation was
// extracted from. It is stamped into every generated file's header.
type GitInfo struct {
	Tag    string
	Commit string
}
