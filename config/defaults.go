package config

import (
	"github.com/teranos/protogen/proto"
)

// defaultOrder is the canonical field-declaration order of the
// result-document model, keyed by definition title. Field names use the
// canonical underscore convention; raw schema names are normalized before
// lookup.
//
// This data is maintained by hand against the producer's model. Titles the
// producer adds without an entry here degrade to schema-declared order,
// which is correct for a first release and must then be pinned here before
// the next one.
var defaultOrder = map[string][]string{
	"ResultDocument": {"meta", "rules"},

	"Metadata": {"timestamp", "version", "argv", "sample", "flavor", "analysis"},
	"Sample":   {"md5", "sha1", "sha256", "path"},
	"Analysis": {
		"format", "arch", "os", "extractor", "rules", "base_address",
		"layout", "feature_counts", "library_functions",
	},

	"Layout":               {"functions"},
	"FunctionLayout":       {"address", "matched_basic_blocks"},
	"BasicBlockLayout":     {"address"},
	"FeatureCounts":        {"file", "functions"},
	"FunctionFeatureCount": {"address", "count"},
	"LibraryFunction":      {"address", "name"},

	"RuleMetadata": {
		"name", "namespace", "authors", "scope", "attack", "mbc",
		"references", "examples", "description", "lib", "is_subscope", "maec",
	},
	"RuleMatches": {"meta", "source", "matches"},
	"MaecMetadata": {
		"analysis_conclusion", "analysis_conclusion_ov",
		"malware_family", "malware_category", "malware_category_ov",
	},
	"AttackSpec": {"parts", "tactic", "technique", "subtechnique", "id"},
	"MBCSpec":    {"parts", "objective", "behavior", "method", "id"},

	"Match":         {"success", "node", "children", "locations", "captures"},
	"StatementNode": {"type", "statement"},
	"FeatureNode":   {"type", "feature"},

	"Address": {"type", "value"},
}

// DefaultOrderTable returns a fresh copy of the built-in table, so callers
// can merge overrides without mutating the defaults.
func DefaultOrderTable() proto.OrderTable {
	table := make(proto.OrderTable, len(defaultOrder))
	for title, fields := range defaultOrder {
		table[title] = append([]string(nil), fields...)
	}
	return table
}
