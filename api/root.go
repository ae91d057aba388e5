package api

import "strings"

// Root aggregates everything extracted from the documentation export.
// Definition slices preserve declaration order from the source API; output
// file ordering and cross-dependent naming rely on it. Root is immutable
// once assembled.
type Root struct {
	// Git is the source-library revision the export was produced from.
	Git GitInfo

	// Enums, Structs and Classes are in declaration order.
	Enums   []*EnumDefinition
	Structs []*StructDefinition
	Classes []*ClassDefinition

	enumsByName   map[string]*EnumDefinition
	structsByName map[string]*StructDefinition
	classesByName map[string]*ClassDefinition

	// enumPrefixes maps enum name to its value-name prefix.
	enumPrefixes map[string]string
	// structFields maps a field name to the set of struct names declaring it.
	structFields map[string]map[string]bool
}

// NewRoot assembles the aggregate and derives its lookup indexes.
//
// The default value-name prefix for an enum is its uppercased name plus a
// trailing underscore; oddPrefixes overrides that derivation for enums with
// irregular prefixes (e.g. roc_protocol uses ROC_PROTO_).
func NewRoot(git GitInfo, enums []*EnumDefinition, structs []*StructDefinition,
	classes []*ClassDefinition, oddPrefixes map[string]string) *Root {

	r := &Root{
		Git:           git,
		Enums:         enums,
		Structs:       structs,
		Classes:       classes,
		enumsByName:   make(map[string]*EnumDefinition, len(enums)),
		structsByName: make(map[string]*StructDefinition, len(structs)),
		classesByName: make(map[string]*ClassDefinition, len(classes)),
		enumPrefixes:  make(map[string]string, len(enums)),
		structFields:  make(map[string]map[string]bool),
	}

	for _, e := range enums {
		r.enumsByName[e.Name] = e

		prefix, ok := oddPrefixes[e.Name]
		if !ok {
			prefix = strings.ToUpper(e.Name) + "_"
		}
		r.enumPrefixes[e.Name] = prefix
	}

	for _, s := range structs {
		r.structsByName[s.Name] = s

		for _, f := range s.Fields {
			owners := r.structFields[f.Name]
			if owners == nil {
				owners = make(map[string]bool)
				r.structFields[f.Name] = owners
			}
			owners[s.Name] = true
		}
	}

	for _, c := range classes {
		r.classesByName[c.Name] = c
	}

	return r
}

// Enum returns the enum definition with the given source name.
func (r *Root) Enum(name string) (*EnumDefinition, bool) {
	e, ok := r.enumsByName[name]
	return e, ok
}

// Struct returns the struct definition with the given source name.
func (r *Root) Struct(name string) (*StructDefinition, bool) {
	s, ok := r.structsByName[name]
	return s, ok
}

// Class returns the class definition with the given source name.
func (r *Root) Class(name string) (*ClassDefinition, bool) {
	c, ok := r.classesByName[name]
	return c, ok
}

// EnumPrefix returns the value-name prefix registered for the given enum.
func (r *Root) EnumPrefix(enumName string) string {
	return r.enumPrefixes[enumName]
}

// HasField reports whether any struct declares a field with the given name.
func (r *Root) HasField(name string) bool {
	return len(r.structFields[name]) > 0
}
