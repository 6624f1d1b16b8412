// Package audit groups raw rows by canonical entity and builds the
// per-entity audit records used for human review. Aggregation is a
// single full pass; emitted variant and source sets are sorted so that
// structurally identical inputs produce identical output regardless of
// row order.
package audit

import (
	"sort"
	"strings"

	"github.com/club19-dev/ledgerlift/internal/config"
	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/normalize"
)

// group accumulates one canonical entity during the aggregation pass.
type group struct {
	clean          string
	variants       map[string]bool
	sources        map[string]bool
	statuses       map[string]bool
	rowNumbers     []int
	tradeCount     int
	firstSeen      model.Date
	lastSeen       model.Date
	requiresReview bool
	reason         string
}

func newGroup(clean string) *group {
	return &group{
		clean:    clean,
		variants: make(map[string]bool),
		sources:  make(map[string]bool),
		statuses: make(map[string]bool),
	}
}

func (g *group) observe(row model.RawRow) {
	g.sources[string(row.Source)] = true
	g.rowNumbers = append(g.rowNumbers, row.RowNumber)
	g.tradeCount++

	if row.Date.IsZero() {
		return
	}
	if g.firstSeen.IsZero() || row.Date.Before(g.firstSeen.Time) {
		g.firstSeen = row.Date
	}
	if g.lastSeen.IsZero() || row.Date.After(g.lastSeen.Time) {
		g.lastSeen = row.Date
	}
}

// flag raises the review flag. The flag is monotone: once raised it
// stays raised, and the first reason given wins.
func (g *group) flag(reason string) {
	if !g.requiresReview {
		g.requiresReview = true
		g.reason = reason
	}
}

// Suppliers aggregates rows by canonical supplier name. It also returns
// the normalization map keyed by raw variant, for the review export.
// Empty supplier labels are recorded under the "Unknown" variant.
func Suppliers(rules config.SupplierRules, rows []model.RawRow) ([]model.EntityAudit, map[string]normalize.Result) {
	groups := make(map[string]*group)
	normMap := make(map[string]normalize.Result)

	for _, row := range rows {
		res := normalize.Supplier(rules, row.SupplierRaw)

		variant := row.SupplierRaw
		if variant == "" {
			variant = normalize.UnknownLabel
		}
		normMap[variant] = res

		g, ok := groups[res.Clean]
		if !ok {
			g = newGroup(res.Clean)
			groups[res.Clean] = g
		}
		g.variants[variant] = true
		g.observe(row)
		if res.RequiresReview {
			g.flag(res.Reason)
		}
	}

	return finish(groups, false), normMap
}

// Clients aggregates rows by folded client key. An entity whose rows
// carried more than one distinct status value (the empty string counts)
// is flagged for review.
func Clients(rows []model.RawRow) []model.EntityAudit {
	groups := make(map[string]*group)

	for _, row := range rows {
		key := normalize.ClientKey(row.ClientRaw)

		g, ok := groups[key]
		if !ok {
			g = newGroup(key)
			groups[key] = g
		}

		variant := row.ClientRaw
		if variant == "" {
			variant = normalize.UnknownLabel
		}
		g.variants[variant] = true
		g.statuses[row.ClientStatusRaw] = true
		g.observe(row)
	}

	for _, g := range groups {
		if len(g.statuses) > 1 {
			g.flag("Multiple statuses: " + strings.Join(sortedKeys(g.statuses), ", "))
		}
	}

	return finish(groups, true)
}

// finish renders groups as audit records, sorted by canonical name.
func finish(groups map[string]*group, withStatuses bool) []model.EntityAudit {
	audits := make([]model.EntityAudit, 0, len(groups))
	for _, g := range groups {
		a := model.EntityAudit{
			CleanName:      g.clean,
			RawVariants:    sortedKeys(g.variants),
			Sources:        sortedKeys(g.sources),
			RowNumbers:     g.rowNumbers,
			TradeCount:     g.tradeCount,
			FirstSeen:      g.firstSeen,
			LastSeen:       g.lastSeen,
			RequiresReview: g.requiresReview,
			Reason:         g.reason,
		}
		if withStatuses {
			// Client audits summarize by status and count; supplier
			// audits keep per-row traceability instead.
			a.Statuses = sortedKeys(g.statuses)
			a.RowNumbers = nil
		}
		audits = append(audits, a)
	}

	sort.Slice(audits, func(i, j int) bool { return audits[i].CleanName < audits[j].CleanName })
	return audits
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
