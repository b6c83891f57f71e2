package proto

import (
	"strings"

	"github.com/teranos/protogen/errors"
	"github.com/teranos/protogen/logger"
	"github.com/teranos/protogen/schema"
)

const header = "// Code generated by protogen. DO NOT EDIT.\n" +
	"syntax = \"proto3\";\n\n"

// Fixed helper messages appended to every document. The source model
// permits arbitrary-precision integers and ambiguous int-or-float values;
// these wrap the representable cases in a oneof instead of forcing a
// fixed-width scalar.
const (
	helperIntegerMessage = "message Integer { oneof value { uint64 u = 1; int64 i = 2; } }\n\n"
	helperNumberMessage  = "message Number { oneof value { uint64 u = 1; int64 i = 2; double f = 3; } }\n\n"
)

// Generator translates one schema into one proto3 document.
type Generator struct {
	table OrderTable
}

// NewGenerator creates a generator using the given canonical order table.
// A nil table is valid: every definition falls back to schema-declared
// property order.
func NewGenerator(table OrderTable) *Generator {
	if table == nil {
		table = OrderTable{}
	}
	return &Generator{table: table}
}

// Generate emits the full document: primary definitions in lexicographic
// title order, then deferred wrapper messages sorted by name, then the
// fixed numeric helper messages.
//
// All errors are fatal to the run; on error no partial text is returned.
func (g *Generator) Generate(s *schema.Schema) (string, error) {
	var sb strings.Builder
	sb.WriteString(header)

	deferred := NewDeferredRegistry()
	em := newEmitter(g.table, deferred)

	for _, title := range s.Titles() {
		def := s.Definitions[title]

		// A definition must declare the title it is referenced by;
		// anything else signals an inconsistent input schema.
		if def.Title != title {
			return "", errors.NewTitleMismatch("definition registered as %q declares title %q", title, def.Title)
		}

		switch {
		case def.IsStringEnum():
			em.emitEnum(&sb, def)
			logger.Logger.Debugw("emitted enum", "title", title, "values", len(def.Enum))
		case def.IsObject():
			if err := em.emitMessage(&sb, def); err != nil {
				return "", err
			}
			logger.Logger.Debugw("emitted message", "title", title, "properties", len(def.Properties))
		default:
			return "", errors.NewUnsupportedShape("definition %q has kind %q, expected string enum or object", title, def.Type)
		}
	}

	wrappers := deferred.Drain()
	for _, dt := range wrappers {
		emitDeferred(&sb, dt)
	}
	if len(wrappers) > 0 {
		logger.Logger.Debugw("emitted deferred wrappers", "count", len(wrappers))
	}

	sb.WriteString(helperIntegerMessage)
	sb.WriteString(helperNumberMessage)

	return sb.String(), nil
}
