package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/protogen/schema"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"analysis-conclusion", "analysis_conclusion"},
		{"att&ck", "attack"},
		{"rule/subscope", "rule_subscope"},
		{"function name", "function_name"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.raw))
	}
}

// props builds an object definition with string-typed properties in the
// given raw-name order.
func props(title string, names ...string) *schema.Definition {
	def := &schema.Definition{Title: title, Type: "object"}
	for _, name := range names {
		def.Properties = append(def.Properties, schema.Property{
			RawName: name,
			Raw:     &schema.RawDescriptor{Type: "string"},
		})
	}
	return def
}

func rawNames(ordered []schema.Property) []string {
	out := make([]string, len(ordered))
	for i, p := range ordered {
		out[i] = p.RawName
	}
	return out
}

func TestResolveCanonicalOrder(t *testing.T) {
	table := OrderTable{
		"Meta": {"name", "namespace", "authors"},
	}
	def := props("Meta", "authors", "name", "namespace")

	ordered := table.Resolve(def)
	assert.Equal(t, []string{"name", "namespace", "authors"}, rawNames(ordered))
}

func TestResolveUnresolvedFollowInRawOrder(t *testing.T) {
	table := OrderTable{
		"Meta": {"name", "authors"},
	}
	// "zeta" and "alpha" are not in the canonical order; they keep their
	// schema-declared relative order after the resolved ones.
	def := props("Meta", "zeta", "authors", "alpha", "name")

	ordered := table.Resolve(def)
	assert.Equal(t, []string{"name", "authors", "zeta", "alpha"}, rawNames(ordered))
}

func TestResolveUnknownTitleDegradesToRawOrder(t *testing.T) {
	table := OrderTable{}
	def := props("Unknown", "c", "a", "b")

	ordered := table.Resolve(def)
	assert.Equal(t, []string{"c", "a", "b"}, rawNames(ordered))
}

func TestResolveNormalizesBeforeLookup(t *testing.T) {
	// Canonical names use underscores; raw schema names carry punctuation.
	table := OrderTable{
		"RuleMetadata": {"attack", "analysis_conclusion", "rule_subscope"},
	}
	def := props("RuleMetadata", "rule/subscope", "att&ck", "analysis-conclusion")

	ordered := table.Resolve(def)
	assert.Equal(t, []string{"att&ck", "analysis-conclusion", "rule/subscope"}, rawNames(ordered))
}

func TestResolveDoesNotMutateDefinition(t *testing.T) {
	table := OrderTable{"Meta": {"b", "a"}}
	def := props("Meta", "a", "b")

	_ = table.Resolve(def)
	require.Equal(t, []string{"a", "b"}, rawNames(def.Properties))
}
