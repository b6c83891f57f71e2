package proto

import (
	"fmt"
	"strings"

	"github.com/teranos/protogen/errors"
	"github.com/teranos/protogen/schema"
)

// emitter writes enum and message blocks for one generation run,
// registering deferred wrapper types as it encounters shapes that need
// them.
type emitter struct {
	table    OrderTable
	deferred *DeferredRegistry
}

func newEmitter(table OrderTable, deferred *DeferredRegistry) *emitter {
	return &emitter{table: table, deferred: deferred}
}

// emitEnum writes a string enum definition. Value 0 is always the reserved
// unspecified sentinel; declared values follow 1-indexed in declared order.
//
//	enum AddressType {
//	  ADDRESSTYPE_UNSPECIFIED = 0;
//	  ADDRESSTYPE_ABSOLUTE = 1;
//	  ...
//	}
func (e *emitter) emitEnum(sb *strings.Builder, def *schema.Definition) {
	prefix := strings.ToUpper(def.Title)

	fmt.Fprintf(sb, "enum %s {\n", def.Title)
	fmt.Fprintf(sb, "  %s = 0;\n", enumValueName(prefix, "unspecified"))
	for i, value := range def.Enum {
		fmt.Fprintf(sb, "  %s = %d;\n", enumValueName(prefix, value), i+1)
	}
	sb.WriteString("}\n\n")
}

// enumValueName builds names like ADDRESSTYPE_ABSOLUTE.
func enumValueName(prefix, value string) string {
	return prefix + "_" + strings.ReplaceAll(strings.ToUpper(value), " ", "_")
}

// emitMessage writes an object definition as a message block. Properties
// are ordered per the canonical order table; field numbers come from one
// shared counter starting at 1, which union alternatives also consume.
func (e *emitter) emitMessage(sb *strings.Builder, def *schema.Definition) error {
	fmt.Fprintf(sb, "message %s {\n", def.Title)

	counter := 1
	for _, prop := range e.table.Resolve(def) {
		next, err := e.emitField(sb, prop, counter)
		if err != nil {
			return errors.Wrapf(err, "message %s", def.Title)
		}
		counter = next
	}

	sb.WriteString("}\n\n")
	return nil
}

// emitField writes one property and returns the next free field number.
func (e *emitter) emitField(sb *strings.Builder, prop schema.Property, counter int) (int, error) {
	name := SanitizeName(prop.RawName)

	s, err := Classify(prop.Raw)
	if err != nil {
		return 0, errors.Wrapf(err, "property %q", prop.RawName)
	}

	switch s.Kind {
	case ShapeReference, ShapePrimitive, ShapeHelper, ShapeCustomObject:
		fmt.Fprintf(sb, "  %s %s = %d;\n", s.TypeName, name, counter)
		return counter + 1, nil

	case ShapeTuple:
		wrapper, err := e.registerTuple(s)
		if err != nil {
			return 0, errors.Wrapf(err, "property %q", prop.RawName)
		}
		fmt.Fprintf(sb, "  %s %s = %d;\n", wrapper.Name, name, counter)
		return counter + 1, nil

	case ShapeArray:
		itemName, err := e.arrayItemTypeName(s.Item)
		if err != nil {
			return 0, errors.Wrapf(err, "property %q", prop.RawName)
		}
		fmt.Fprintf(sb, "  repeated %s %s = %d;\n", itemName, name, counter)
		return counter + 1, nil

	case ShapeUnion:
		fmt.Fprintf(sb, "  oneof %s {\n", name)
		for j, alt := range s.Alternatives {
			typeName, err := e.unionAlternativeTypeName(alt)
			if err != nil {
				return 0, errors.Wrapf(err, "property %q alternative %d", prop.RawName, j)
			}
			// Each alternative consumes its own number from the shared
			// counter.
			fmt.Fprintf(sb, "    %s v%d = %d;\n", typeName, j, counter)
			counter++
		}
		sb.WriteString("  };\n")
		return counter, nil

	case ShapeMap:
		valueName, err := e.mapValueTypeName(s.Value)
		if err != nil {
			return 0, errors.Wrapf(err, "property %q", prop.RawName)
		}
		fmt.Fprintf(sb, "  map <string, %s> %s = %d;\n", valueName, name, counter)
		return counter + 1, nil
	}

	return 0, errors.AssertionFailedf("unhandled shape kind %d", s.Kind)
}

// registerTuple resolves a tuple's element type names, registers the
// wrapper, and returns it.
func (e *emitter) registerTuple(s Shape) (DeferredType, error) {
	names := make([]string, len(s.Elements))
	for i, el := range s.Elements {
		n, err := scalarTypeName(el)
		if err != nil {
			return DeferredType{}, errors.Wrapf(err, "tuple element %d", i)
		}
		names[i] = n
	}
	dt := TupleWrapper(names)
	e.deferred.Register(dt)
	return dt, nil
}

// arrayItemTypeName resolves the element type of a repeated field. Items
// must be plain types or tuples (which repeat their wrapper); nested arrays
// and maps as array items are unsupported shapes.
func (e *emitter) arrayItemTypeName(item *schema.RawDescriptor) (string, error) {
	s, err := Classify(item)
	if err != nil {
		return "", err
	}
	switch s.Kind {
	case ShapeReference, ShapePrimitive, ShapeHelper, ShapeCustomObject:
		return s.TypeName, nil
	case ShapeTuple:
		dt, err := e.registerTuple(s)
		if err != nil {
			return "", err
		}
		return dt.Name, nil
	default:
		return "", errors.NewUnsupportedShape("array item: %s", item)
	}
}

// unionAlternativeTypeName resolves the type of one oneof sub-field.
// Alternatives must be plain non-object types or tuples; repeated and map
// shapes cannot appear inside a oneof.
func (e *emitter) unionAlternativeTypeName(alt *schema.RawDescriptor) (string, error) {
	s, err := Classify(alt)
	if err != nil {
		return "", err
	}
	switch s.Kind {
	case ShapeReference, ShapePrimitive, ShapeHelper:
		return s.TypeName, nil
	case ShapeTuple:
		dt, err := e.registerTuple(s)
		if err != nil {
			return "", err
		}
		return dt.Name, nil
	default:
		return "", errors.NewUnsupportedShape("union alternative: %s", alt)
	}
}

// mapValueTypeName resolves a map's value type. A map value cannot itself
// be repeated, so an array value goes through a synthetic wrapper message
// whose name derives from the item type:
//
//	map <string, Array_Address> captures = 3;
//	...
//	message Array_Address { repeated Address values = 1; }
//
// Wrappers are only created where needed; plain values stay direct.
func (e *emitter) mapValueTypeName(value *schema.RawDescriptor) (string, error) {
	s, err := Classify(value)
	if err != nil {
		return "", err
	}
	switch s.Kind {
	case ShapeReference, ShapePrimitive, ShapeHelper, ShapeCustomObject:
		return s.TypeName, nil
	case ShapeArray:
		itemName, err := scalarTypeName(s.Item)
		if err != nil {
			return "", errors.Wrap(err, "map value item")
		}
		dt := ArrayWrapper(itemName)
		e.deferred.Register(dt)
		return dt.Name, nil
	case ShapeTuple:
		dt, err := e.registerTuple(s)
		if err != nil {
			return "", err
		}
		return dt.Name, nil
	default:
		return "", errors.NewUnsupportedShape("map value: %s", value)
	}
}

// emitDeferred writes one synthesized wrapper message.
func emitDeferred(sb *strings.Builder, dt DeferredType) {
	switch dt.Kind {
	case DeferredArray:
		fmt.Fprintf(sb, "message %s { repeated %s values = 1; }\n\n", dt.Name, dt.ItemTypeName)
	case DeferredTuple:
		fmt.Fprintf(sb, "message %s {\n", dt.Name)
		for i, el := range dt.ElementTypeNames {
			fmt.Fprintf(sb, "  %s v%d = %d;\n", el, i, i+1)
		}
		sb.WriteString("}\n\n")
	}
}
