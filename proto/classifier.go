// Package proto translates a schema into proto3 interface-definition text.
//
// The translation runs manually at release boundaries, never on routine
// builds: field numbers are derived from property order, so regenerating
// against a reordered model would silently renumber fields and break wire
// compatibility for deployed clients. The emitted document is committed to
// version control and must be byte-identical across runs for the same
// input, which is why every iteration below is explicitly ordered.
package proto

import (
	"github.com/teranos/protogen/errors"
	"github.com/teranos/protogen/schema"
)

// ShapeKind is the exhaustive set of property shape categories.
type ShapeKind int

const (
	// ShapeReference is a $ref pointer to another definition.
	ShapeReference ShapeKind = iota
	// ShapePrimitive is a scalar with a native proto type (string, bool).
	ShapePrimitive
	// ShapeHelper is an unbounded numeric mapped to one of the fixed
	// helper messages rather than a fixed-width native type.
	ShapeHelper
	// ShapeCustomObject is an inline object description with an explicit
	// property list, named by its title.
	ShapeCustomObject
	// ShapeTuple is a fixed-size array (declared minimum equals declared
	// maximum), emitted through a synthetic wrapper message.
	ShapeTuple
	// ShapeArray is a variable-size array of one element type.
	ShapeArray
	// ShapeMap maps string keys to one value type.
	ShapeMap
	// ShapeUnion offers several alternative shapes.
	ShapeUnion
)

// Shape is the classification of one raw property description.
// Exactly one kind applies; the fields populated depend on it.
type Shape struct {
	Kind ShapeKind

	// TypeName is the emitted type name for Reference, Primitive, Helper
	// and CustomObject shapes.
	TypeName string

	// Elements are a tuple's per-position descriptors, in order.
	Elements []*schema.RawDescriptor
	// Size is a tuple's fixed element count.
	Size int

	// Item is an array's element descriptor.
	Item *schema.RawDescriptor

	// Value is a map's value descriptor.
	Value *schema.RawDescriptor

	// Alternatives are a union's alternative descriptors, in order.
	Alternatives []*schema.RawDescriptor
}

// Names of the fixed helper messages appended to every document.
const (
	HelperInteger = "Integer"
	HelperNumber  = "Number"
)

// primitiveTypeNames maps schema scalar tags to native proto types.
var primitiveTypeNames = map[string]string{
	"string":  "string",
	"boolean": "bool",
}

// helperTypeNames maps unbounded numeric tags to the helper messages.
// The source model permits arbitrary-precision integers and ambiguous
// int-or-float values, neither of which fits a fixed-width scalar.
var helperTypeNames = map[string]string{
	"integer": HelperInteger,
	"number":  HelperNumber,
}

// Classify decides which shape category a raw property description is.
// Classification is total: a description matching none of the recognized
// categories is an unsupported-shape error carrying the description.
func Classify(rd *schema.RawDescriptor) (Shape, error) {
	switch {
	case rd.Ref != "":
		target, ok := schema.RefTarget(rd.Ref)
		if !ok {
			return Shape{}, errors.NewUnsupportedShape("unrecognized $ref pointer: %s", rd)
		}
		return Shape{Kind: ShapeReference, TypeName: target}, nil

	case rd.AnyOf != nil:
		return Shape{Kind: ShapeUnion, Alternatives: rd.AnyOf}, nil

	case rd.Type == "array":
		// A fixed-size array is a tuple, never an array.
		// This check must run before the general array case.
		if rd.MinItems != nil && rd.MaxItems != nil && *rd.MinItems == *rd.MaxItems {
			if len(rd.TupleItems) == 0 {
				return Shape{}, errors.NewUnsupportedShape("fixed-size array without per-position items: %s", rd)
			}
			return Shape{Kind: ShapeTuple, Elements: rd.TupleItems, Size: *rd.MinItems}, nil
		}
		if rd.Item == nil {
			return Shape{}, errors.NewUnsupportedShape("array without a single item type: %s", rd)
		}
		return Shape{Kind: ShapeArray, Item: rd.Item}, nil

	case rd.Type == "object":
		if rd.HasAdditional {
			if rd.Additional == nil {
				return Shape{}, errors.NewUnsupportedShape("map value is not a type description: %s", rd)
			}
			return Shape{Kind: ShapeMap, Value: rd.Additional}, nil
		}
		if rd.HasProperties && rd.Title != "" {
			return Shape{Kind: ShapeCustomObject, TypeName: rd.Title}, nil
		}
		return Shape{}, errors.NewUnsupportedShape("object description with neither value constraint nor titled property list: %s", rd)

	default:
		if name, ok := primitiveTypeNames[rd.Type]; ok {
			return Shape{Kind: ShapePrimitive, TypeName: name}, nil
		}
		if name, ok := helperTypeNames[rd.Type]; ok {
			return Shape{Kind: ShapeHelper, TypeName: name}, nil
		}
		return Shape{}, errors.NewUnsupportedShape("property description matches no recognized shape: %s", rd)
	}
}

// scalarTypeName resolves the type name for a description used where only a
// plain (non-repeated, non-map) type can appear: tuple elements and the
// item of an array-valued map entry.
func scalarTypeName(rd *schema.RawDescriptor) (string, error) {
	s, err := Classify(rd)
	if err != nil {
		return "", err
	}
	switch s.Kind {
	case ShapeReference, ShapePrimitive, ShapeHelper, ShapeCustomObject:
		return s.TypeName, nil
	default:
		return "", errors.NewUnsupportedShape("no plain type name for: %s", rd)
	}
}
