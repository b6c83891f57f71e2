// Package schema models the input to the proto translator: a simplified
// interchange-schema document holding named definitions of string enums and
// objects with typed properties.
//
// Property declaration order is significant downstream (field numbering
// falls back to it for properties absent from the canonical order table),
// so loading preserves the order in which each definition declares its
// properties rather than decoding into a Go map.
package schema

import (
	"bytes"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/teranos/protogen/errors"
)

// RefPrefix is the pointer prefix used by references between definitions,
// as in {"$ref": "#/definitions/Address"}.
const RefPrefix = "#/definitions/"

// RefTarget extracts the referenced definition title from a pointer string.
// Returns false if the pointer does not use the expected prefix.
func RefTarget(ref string) (string, bool) {
	if len(ref) <= len(RefPrefix) || ref[:len(RefPrefix)] != RefPrefix {
		return "", false
	}
	return ref[len(RefPrefix):], true
}

// Schema is a mapping from definition title to definition.
type Schema struct {
	Definitions map[string]*Definition
}

// Titles returns all definition titles sorted ascending.
// The driver iterates definitions in this order so that output is
// byte-identical regardless of input declaration order.
func (s *Schema) Titles() []string {
	titles := make([]string, 0, len(s.Definitions))
	for title := range s.Definitions {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Definition is one named schema entry: a string enum or an object.
type Definition struct {
	// Title is the definition's declared title field.
	// The generator checks it against the key it was registered under.
	Title string

	// Type is the raw type tag ("string", "object", ...).
	Type string

	// Enum holds the declared values, in order, when the definition is a
	// string enum.
	Enum []string

	// Properties holds an object definition's properties in the order the
	// source document declares them.
	Properties []Property
}

// IsStringEnum reports whether the definition is a string enumeration.
func (d *Definition) IsStringEnum() bool {
	return d.Type == "string" && d.Enum != nil
}

// IsObject reports whether the definition is an object with properties.
func (d *Definition) IsObject() bool {
	return d.Type == "object"
}

// Property is one (raw name, descriptor) pair of an object definition.
type Property struct {
	RawName string
	Raw     *RawDescriptor
}

// RawDescriptor is one raw property description as read from the document.
// Classification into a shape tag happens in the proto package; this type
// only captures the structure needed to classify and to report errors.
type RawDescriptor struct {
	// Ref is the "$ref" pointer, empty when absent.
	Ref string

	// Type is the "type" tag ("string", "boolean", "integer", "number",
	// "array", "object"), empty when absent.
	Type string

	// Title names inline object descriptions (custom types).
	Title string

	// Item is the "items" descriptor when it is a single description
	// (a homogeneous array).
	Item *RawDescriptor

	// TupleItems is the "items" list when it is a per-position sequence
	// (a fixed-size tuple).
	TupleItems []*RawDescriptor

	// MinItems/MaxItems are the declared size constraints, nil when absent.
	MinItems *int
	MaxItems *int

	// HasAdditional records the presence of "additionalProperties".
	// Additional is its descriptor when it is an object description and nil
	// when it is a bare boolean.
	HasAdditional bool
	Additional    *RawDescriptor

	// AnyOf is the ordered list of union alternatives, nil when absent.
	AnyOf []*RawDescriptor

	// HasProperties records the presence of an explicit "properties" list.
	HasProperties bool

	raw json.RawMessage
}

// String returns the original JSON of the description, compacted.
// Used in unsupported-shape errors so the offending description is visible.
func (d *RawDescriptor) String() string {
	if len(d.raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, d.raw); err != nil {
		return string(d.raw)
	}
	return buf.String()
}

// UnmarshalJSON decodes a raw property description, keeping the original
// bytes for diagnostics and splitting the polymorphic "items" and
// "additionalProperties" members by their JSON kind.
func (d *RawDescriptor) UnmarshalJSON(data []byte) error {
	var aux struct {
		Ref        string           `json:"$ref"`
		Type       string           `json:"type"`
		Title      string           `json:"title"`
		Items      json.RawMessage  `json:"items"`
		MinItems   *int             `json:"minItems"`
		MaxItems   *int             `json:"maxItems"`
		Additional json.RawMessage  `json:"additionalProperties"`
		AnyOf      []*RawDescriptor `json:"anyOf"`
		Properties json.RawMessage  `json:"properties"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "decode property description")
	}

	d.Ref = aux.Ref
	d.Type = aux.Type
	d.Title = aux.Title
	d.MinItems = aux.MinItems
	d.MaxItems = aux.MaxItems
	d.AnyOf = aux.AnyOf
	d.HasProperties = len(aux.Properties) > 0
	d.raw = append(json.RawMessage(nil), data...)

	if len(aux.Items) > 0 {
		if firstByte(aux.Items) == '[' {
			if err := json.Unmarshal(aux.Items, &d.TupleItems); err != nil {
				return errors.Wrap(err, "decode tuple items")
			}
		} else {
			if err := json.Unmarshal(aux.Items, &d.Item); err != nil {
				return errors.Wrap(err, "decode array items")
			}
		}
	}

	if len(aux.Additional) > 0 {
		d.HasAdditional = true
		if firstByte(aux.Additional) == '{' {
			if err := json.Unmarshal(aux.Additional, &d.Additional); err != nil {
				return errors.Wrap(err, "decode map value description")
			}
		}
	}

	return nil
}

// UnmarshalJSON decodes one definition, walking the "properties" object
// token by token so declaration order survives.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var aux struct {
		Title      string          `json:"title"`
		Type       string          `json:"type"`
		Enum       []string        `json:"enum"`
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "decode definition")
	}

	d.Title = aux.Title
	d.Type = aux.Type
	d.Enum = aux.Enum

	if len(aux.Properties) == 0 {
		return nil
	}
	return walkObject(aux.Properties, func(name string, dec *json.Decoder) error {
		var rd RawDescriptor
		if err := dec.Decode(&rd); err != nil {
			return errors.Wrapf(err, "property %q", name)
		}
		d.Properties = append(d.Properties, Property{RawName: name, Raw: &rd})
		return nil
	})
}

// Load parses a schema document from JSON.
// Definition titles must be unique; a duplicate is a fatal load error.
func Load(data []byte) (*Schema, error) {
	var doc struct {
		Definitions json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode schema document")
	}
	if len(doc.Definitions) == 0 {
		return nil, errors.New("schema document has no definitions")
	}

	s := &Schema{Definitions: make(map[string]*Definition)}
	err := walkObject(doc.Definitions, func(title string, dec *json.Decoder) error {
		if _, exists := s.Definitions[title]; exists {
			return errors.Wrapf(errors.ErrDuplicateTitle, "%q", title)
		}
		var def Definition
		if err := dec.Decode(&def); err != nil {
			return errors.Wrapf(err, "definition %q", title)
		}
		s.Definitions[title] = &def
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read schema %s", path)
	}
	return Load(data)
}

// walkObject visits the members of a JSON object in document order,
// handing each member's value decoder to fn.
func walkObject(raw json.RawMessage, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "read object")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Newf("expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "read object key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.Newf("expected string key, got %v", keyTok)
		}
		if err := fn(key, dec); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "read object end")
	}
	return nil
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
