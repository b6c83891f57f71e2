package proto

import (
	"sort"
	"strings"
)

// DeferredKind distinguishes the two wrapper families.
type DeferredKind int

const (
	// DeferredArray wraps the repeated values of an array-valued map entry.
	DeferredArray DeferredKind = iota
	// DeferredTuple wraps the per-position fields of a fixed-size tuple.
	DeferredTuple
)

// DeferredType is a synthetic wrapper message invented during translation
// for a shape the target language cannot express directly as a field type.
// Its name is a pure function of the wrapped shape, so identical shapes
// always collapse to one definition regardless of where first encountered.
type DeferredType struct {
	Name string
	Kind DeferredKind

	// ItemTypeName is the repeated element type of an array wrapper.
	ItemTypeName string

	// ElementTypeNames are the per-position types of a tuple wrapper.
	ElementTypeNames []string
}

// ArrayWrapper derives the wrapper for an array-valued map entry,
// like Array_Address for a map whose values are arrays of Address.
func ArrayWrapper(itemTypeName string) DeferredType {
	return DeferredType{
		Name:         "Array_" + itemTypeName,
		Kind:         DeferredArray,
		ItemTypeName: itemTypeName,
	}
}

// TupleWrapper derives the wrapper for a fixed-size tuple. Two-element
// tuples are pairs (Pair_Address_Match); other sizes use the generic
// prefix (Tuple_A_B_C).
func TupleWrapper(elementTypeNames []string) DeferredType {
	base := "Tuple"
	if len(elementTypeNames) == 2 {
		base = "Pair"
	}
	return DeferredType{
		Name:             base + "_" + strings.Join(elementTypeNames, "_"),
		Kind:             DeferredTuple,
		ElementTypeNames: elementTypeNames,
	}
}

// DeferredRegistry accumulates wrapper types discovered while emitting
// primary definitions, deduplicated by derived name. It lives for exactly
// one generation run: created empty, populated during emission, drained
// once, discarded.
type DeferredRegistry struct {
	types map[string]DeferredType
}

// NewDeferredRegistry creates an empty registry.
func NewDeferredRegistry() *DeferredRegistry {
	return &DeferredRegistry{types: make(map[string]DeferredType)}
}

// Register inserts a deferred type. Registration is write-once per name:
// the name derives from the shape, so a later registration under the same
// name is the same type and becomes a no-op.
func (r *DeferredRegistry) Register(dt DeferredType) {
	if _, exists := r.types[dt.Name]; exists {
		return
	}
	r.types[dt.Name] = dt
}

// Len returns the number of registered types.
func (r *DeferredRegistry) Len() int {
	return len(r.types)
}

// Drain returns all registered types sorted by name and empties the
// registry.
func (r *DeferredRegistry) Drain() []DeferredType {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]DeferredType, 0, len(names))
	for _, name := range names {
		out = append(out, r.types[name])
	}
	r.types = make(map[string]DeferredType)
	return out
}
