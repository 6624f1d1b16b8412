// Package normalize collapses inconsistent free-text identifiers into
// canonical entity names. Every function here is a pure function of its
// input and the rule tables it is given, so the same raw string always
// resolves the same way within one run.
package normalize

import (
	"strings"

	"github.com/club19-dev/ledgerlift/internal/config"
)

// UnknownLabel is the canonical name recorded for empty entity labels.
const UnknownLabel = "Unknown"

// UnknownClientKey is the canonical key assigned to empty client labels.
const UnknownClientKey = "unknown"

// Result classifies one raw label.
type Result struct {
	Clean          string `json:"clean"`
	RequiresReview bool   `json:"requires_review"`
	Reason         string `json:"reason,omitempty"`
}

// Supplier resolves a raw supplier label against the rule tables, in
// priority order: empty, merge table, review list, pass-through.
func Supplier(rules config.SupplierRules, raw string) Result {
	if raw == "" {
		return Result{Clean: UnknownLabel, RequiresReview: true, Reason: "Empty supplier"}
	}

	if clean, ok := rules.Merge[raw]; ok {
		return Result{Clean: clean}
	}

	for _, name := range rules.Review {
		if raw == name {
			return Result{Clean: raw, RequiresReview: true, Reason: "Ambiguous supplier name"}
		}
	}

	return Result{Clean: raw}
}

// ClientKey folds a raw client label to its canonical key: lowercased
// and trimmed. Empty labels fold to UnknownClientKey. No merge table is
// applied; clients have no known aliasing beyond case and whitespace.
func ClientKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return UnknownClientKey
	}
	return key
}
