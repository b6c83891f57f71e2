package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOrderFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "order.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultOrderTableReturnsCopies(t *testing.T) {
	a := DefaultOrderTable()
	b := DefaultOrderTable()

	require.NotEmpty(t, a["RuleMetadata"])
	a["RuleMetadata"][0] = "mutated"
	a["Metadata"] = nil

	assert.Equal(t, "name", b["RuleMetadata"][0])
	assert.NotEmpty(t, b["Metadata"])
}

func TestLoadOrderTableMergesOverDefaults(t *testing.T) {
	path := writeOrderFile(t, `
[order]
RuleMetadata = ["namespace", "name"]
NewType = ["alpha", "beta"]
`)

	table, err := LoadOrderTable(path)
	require.NoError(t, err)

	// Overridden wholesale
	assert.Equal(t, []string{"namespace", "name"}, table["RuleMetadata"])
	// Added
	assert.Equal(t, []string{"alpha", "beta"}, table["NewType"])
	// Untouched default survives
	assert.Equal(t, DefaultOrderTable()["Sample"], table["Sample"])
}

func TestLoadOrderTablePreservesTitleCase(t *testing.T) {
	path := writeOrderFile(t, `
[order]
MBCSpec = ["id"]
`)

	table, err := LoadOrderTable(path)
	require.NoError(t, err)

	// Titles are case-sensitive lookup keys downstream
	assert.Equal(t, []string{"id"}, table["MBCSpec"])
	_, lowercased := table["mbcspec"]
	assert.False(t, lowercased)
}

func TestLoadOrderTableMissingFile(t *testing.T) {
	_, err := LoadOrderTable(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadOrderTableMalformed(t *testing.T) {
	path := writeOrderFile(t, `[order`)
	_, err := LoadOrderTable(path)
	assert.Error(t, err)
}
