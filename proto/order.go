package proto

import (
	"sort"
	"strings"

	"github.com/teranos/protogen/schema"
)

// nameSanitizer converts raw schema property names to the canonical field
// naming convention. Raw names and canonical names differ only in
// punctuation, like "analysis-conclusion" vs "analysis_conclusion" or
// "att&ck" vs "attack".
var nameSanitizer = strings.NewReplacer(
	"-", "_",
	"/", "_",
	" ", "_",
	"&", "a",
)

// SanitizeName normalizes a raw schema property name for emission and for
// lookup against the canonical order table.
func SanitizeName(name string) string {
	return nameSanitizer.Replace(name)
}

// OrderTable maps definition titles to their canonical field-declaration
// order. The table is build-time configuration supplied by the producer of
// the domain model; it is never discovered from the schema itself, because
// the schema's own property iteration order is not guaranteed stable
// between releases while emitted field numbers must be.
type OrderTable map[string][]string

// Resolve returns the emission order for a definition's properties.
//
// Properties whose sanitized name appears in the definition's canonical
// order come first, ordered per the table. The rest follow in their
// schema-declared relative order. A title absent from the table entirely is
// not an error: every property falls into the fallback bucket.
//
// There is deliberately no secondary tiebreak for fallback properties. If
// the producer of the schema changes its declaration order for them, their
// field numbers shift with it; introducing a tiebreak now would itself
// renumber existing fields.
func (t OrderTable) Resolve(def *schema.Definition) []schema.Property {
	canonical := t[def.Title]
	index := make(map[string]int, len(canonical))
	for i, name := range canonical {
		index[name] = i
	}

	type ranked struct {
		prop schema.Property
		key  int
	}
	props := make([]ranked, len(def.Properties))
	for i, p := range def.Properties {
		key, ok := index[SanitizeName(p.RawName)]
		if !ok {
			// Past the end of the canonical order, preserving raw order.
			key = len(canonical) + i
		}
		props[i] = ranked{prop: p, key: key}
	}

	sort.SliceStable(props, func(a, b int) bool {
		return props[a].key < props[b].key
	})

	out := make([]schema.Property, len(props))
	for i, r := range props {
		out[i] = r.prop
	}
	return out
}
