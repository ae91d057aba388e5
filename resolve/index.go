// Package resolve builds the global symbol index: the once-per-run table
// mapping every distinct cross-reference token found anywhere in the
// documentation model to its semantic classification.
//
// The index must be fully built before any renderer runs, because a
// reference in one definition's comment may point at a definition declared
// later. Every renderer consults the same index, so all targets agree on
// what a name points to.
package resolve

import (
	"regexp"
	"strings"

	"github.com/roc-streaming/bindgen/api"
)

// valuePrefix is the uppercase sentinel shared by all enumerated constants.
// It gates the enum-value scan: struct field names never have this shape,
// which is what keeps the enum-value and struct-field checks separable.
const valuePrefix = "ROC_"

var (
	methodNameRe = regexp.MustCompile(`^[a-z_]+$`)
	typedefRe    = regexp.MustCompile(`^roc_[a-z_]+$`)
)

type cacheEntry struct {
	ref api.DocRef
	ok  bool
}

// Index is the symbol index over one Root. It memoizes classification per
// raw token, so repeated resolution of identical token text yields the
// identical result.
type Index struct {
	root  *api.Root
	cache map[string]cacheEntry
}

// NewIndex classifies every ref and code token reachable from the Root's
// documentation trees in a single upfront pass and returns the populated
// index. Resolution never fails; tokens that match no classification rule
// are recorded as unresolved, which is a valid terminal outcome.
func NewIndex(root *api.Root) *Index {
	ix := &Index{
		root:  root,
		cache: make(map[string]cacheEntry),
	}

	for _, e := range root.Enums {
		ix.visitComment(e.Doc)
		for _, v := range e.Values {
			ix.visitComment(v.Doc)
		}
	}
	for _, s := range root.Structs {
		ix.visitComment(s.Doc)
		for _, f := range s.Fields {
			ix.visitComment(f.Doc)
		}
	}
	for _, c := range root.Classes {
		ix.visitComment(c.Doc)
		for _, m := range c.Methods {
			ix.visitComment(m.Doc)
		}
	}

	return ix
}

// Resolve classifies a raw reference token. The second return value is false
// when the token matches no classification rule; callers then fall back to
// rendering the raw token as plain, unlinked text.
func (ix *Index) Resolve(token string) (api.DocRef, bool) {
	if e, ok := ix.cache[token]; ok {
		return e.ref, e.ok
	}
	ref, ok := ix.classify(token)
	ix.cache[token] = cacheEntry{ref: ref, ok: ok}
	return ref, ok
}

// Len returns the number of distinct tokens classified so far.
func (ix *Index) Len() int {
	return len(ix.cache)
}

func (ix *Index) visitComment(doc api.DocComment) {
	for _, block := range doc.Blocks {
		ix.visitItems(block.Items)
	}
}

func (ix *Index) visitItems(items []api.DocItem) {
	for _, item := range items {
		switch item.Kind {
		case api.ItemRef, api.ItemCode:
			ix.Resolve(item.Text)
		case api.ItemList:
			for _, block := range item.Blocks {
				ix.visitItems(block.Items)
			}
		}
	}
}

// classify applies the classification rules in their fixed precedence order.
// The order is load-bearing: several categories share naming conventions,
// and the first match wins.
func (ix *Index) classify(token string) (api.DocRef, bool) {
	// 1. Exact enum/struct/class name (e.g. "roc_interface").
	if _, ok := ix.root.Enum(token); ok {
		return api.DocRef{Kind: api.RefEnum, Name: token}, true
	}
	if _, ok := ix.root.Struct(token); ok {
		return api.DocRef{Kind: api.RefStruct, Name: token}, true
	}
	if _, ok := ix.root.Class(token); ok {
		return api.DocRef{Kind: api.RefClass, Name: token}, true
	}

	// 2. Enum value (e.g. "ROC_INTERFACE_AUDIO_SOURCE"). Gated on the
	// uppercase constant shape; when more than one registered prefix is a
	// proper prefix of the token, the longest one wins.
	if strings.HasPrefix(token, valuePrefix) {
		var bestEnum, bestPrefix string
		for _, e := range ix.root.Enums {
			prefix := ix.root.EnumPrefix(e.Name)
			if len(token) > len(prefix) && strings.HasPrefix(token, prefix) &&
				len(prefix) > len(bestPrefix) {
				bestEnum, bestPrefix = e.Name, prefix
			}
		}
		if bestPrefix != "" {
			return api.DocRef{
				Kind:      api.RefEnumValue,
				Name:      token,
				EnumName:  bestEnum,
				EnumValue: strings.TrimPrefix(token, bestPrefix),
			}, true
		}
	}

	// 3. Struct field (e.g. "packet_length").
	if ix.root.HasField(token) {
		return api.DocRef{Kind: api.RefStructField, Name: token}, true
	}

	// 4. Class method (e.g. "roc_sender_write()"): a known class name
	// followed by a method suffix and an optional call marker.
	for _, c := range ix.root.Classes {
		prefix := c.Name + "_"
		if !strings.HasPrefix(token, prefix) {
			continue
		}
		method := strings.TrimSuffix(strings.TrimPrefix(token, prefix), "()")
		if methodNameRe.MatchString(method) {
			return api.DocRef{
				Kind:       api.RefClassMethod,
				Name:       token,
				ClassName:  c.Name,
				MethodName: method,
			}, true
		}
	}

	// 5. Another namespaced type name (e.g. "roc_slot").
	if typedefRe.MatchString(token) {
		return api.DocRef{Kind: api.RefTypedef, Name: token}, true
	}

	// 6. Ordinary prose that happens to look like an identifier.
	return api.DocRef{}, false
}
