// Package gen defines the generator contract shared by all target
// renderers, plus the driver that walks the definition set.
package gen

import (
	"github.com/roc-streaming/bindgen/api"
	"github.com/roc-streaming/bindgen/errors"
)

// Generator is implemented once per target ecosystem. Each method produces
// one artifact for one definition. A renderer may legitimately emit a
// scaffold plus a warning for a kind it does not fully support yet; that is
// a documented partial-capability state, not a failure.
type Generator interface {
	// Language returns the target name used in logs (e.g. "go", "java").
	Language() string

	GenerateEnum(enum *api.EnumDefinition) error
	GenerateStruct(st *api.StructDefinition) error
	GenerateClass(class *api.ClassDefinition) error
}

// Run walks all definitions per kind in the Root's stored declaration order
// and delegates each to the generator. The order is never alphabetical and
// never map order: regenerated output must be diff-friendly because the
// artifacts are checked into version control.
func Run(root *api.Root, g Generator) error {
	for _, e := range root.Enums {
		if err := g.GenerateEnum(e); err != nil {
			return errors.Wrapf(err, "%s: enum %s", g.Language(), e.Name)
		}
	}

	for _, s := range root.Structs {
		if err := g.GenerateStruct(s); err != nil {
			return errors.Wrapf(err, "%s: struct %s", g.Language(), s.Name)
		}
	}

	for _, c := range root.Classes {
		if err := g.GenerateClass(c); err != nil {
			return errors.Wrapf(err, "%s: class %s", g.Language(), c.Name)
		}
	}

	return nil
}
