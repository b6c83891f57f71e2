// Package config loads the canonical property-order table.
//
// The table is build-time configuration derived once from the domain
// model's declared field order. It ships with built-in defaults for the
// result-document model and can be extended or overridden from a TOML
// file when the producer revises its model between releases.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/protogen/errors"
	"github.com/teranos/protogen/proto"
)

// OrderFile is the on-disk shape of an order-table file:
//
//	[order]
//	RuleMetadata = ["name", "namespace", "authors"]
//
// Definition titles are case-sensitive, which is why this is parsed with
// go-toml directly: viper-style loaders lowercase map keys.
type OrderFile struct {
	Order map[string][]string `toml:"order"`
}

// LoadOrderTable reads a TOML order-table file and merges it over the
// built-in defaults. An entry in the file replaces the same-titled default
// wholesale; titles not mentioned keep their default order.
func LoadOrderTable(path string) (proto.OrderTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read order table %s", path)
	}

	var f OrderFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse order table %s", path)
	}

	table := DefaultOrderTable()
	for title, fields := range f.Order {
		table[title] = fields
	}
	return table, nil
}
