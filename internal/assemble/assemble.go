// Package assemble assigns identifiers to canonical entities, joins raw
// rows to them, derives missing trade fields, and emits the final
// record collections. It must not run until aggregation has produced
// the full audit collections for the same row set.
package assemble

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/club19-dev/ledgerlift/internal/config"
	"github.com/club19-dev/ledgerlift/internal/id"
	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/normalize"
	"github.com/club19-dev/ledgerlift/internal/parse"
)

// Tables are the final relational collections for one pipeline run.
type Tables struct {
	Suppliers []model.LegacySupplier
	Clients   []model.LegacyClient
	Trades    []model.LegacyTrade
	Seed      []model.SupplierSeed
}

// Build assembles the legacy tables. Suppliers and clients are assigned
// identifiers independently, in audit order; trades keep input row
// order. Entity resolution re-invokes the same pure normalizer
// functions the aggregation pass used, with the same rule tables, so
// the join cannot disagree with the audits.
func Build(cfg *config.Config, gen id.Generator, rows []model.RawRow, supplierAudits, clientAudits []model.EntityAudit) (Tables, error) {
	supplierIDs := make(map[string]string, len(supplierAudits))
	suppliers := make([]model.LegacySupplier, 0, len(supplierAudits))
	for _, a := range supplierAudits {
		sid := gen.NewID()
		supplierIDs[a.CleanName] = sid
		suppliers = append(suppliers, model.LegacySupplier{
			ID:             sid,
			SupplierClean:  a.CleanName,
			RawVariants:    a.RawVariants,
			RequiresReview: a.RequiresReview,
			Reason:         a.Reason,
			FirstSeen:      a.FirstSeen,
			LastSeen:       a.LastSeen,
			TradeCount:     a.TradeCount,
		})
	}

	clientIDs := make(map[string]string, len(clientAudits))
	clients := make([]model.LegacyClient, 0, len(clientAudits))
	for _, a := range clientAudits {
		cid := gen.NewID()
		clientIDs[a.CleanName] = cid
		clients = append(clients, model.LegacyClient{
			ID:             cid,
			ClientClean:    a.CleanName,
			RawVariants:    a.RawVariants,
			ClientStatus:   strings.Join(a.Statuses, ", "),
			FirstSeen:      a.FirstSeen,
			LastSeen:       a.LastSeen,
			TradeCount:     a.TradeCount,
			RequiresReview: a.RequiresReview,
		})
	}

	trades := make([]model.LegacyTrade, 0, len(rows))
	for _, row := range rows {
		supplierClean := normalize.Supplier(cfg.Suppliers, row.SupplierRaw).Clean
		clientKey := normalize.ClientKey(row.ClientRaw)

		trace, err := json.Marshal(row)
		if err != nil {
			return Tables{}, fmt.Errorf("serializing row %d (%s): %w", row.RowNumber, row.Source, err)
		}

		trades = append(trades, model.LegacyTrade{
			ID:            gen.NewID(),
			InvoiceNumber: row.InvoiceNumber,
			TradeDate:     row.Date,
			RawClient:     row.ClientRaw,
			RawSupplier:   row.SupplierRaw,
			ClientID:      clientIDs[clientKey],
			SupplierID:    supplierIDs[supplierClean],
			Item:          row.ItemRaw,
			Brand:         row.BrandRaw,
			Category:      deriveCategory(row),
			BuyPrice:      row.BuyPriceRaw,
			SellPrice:     row.SellPriceRaw,
			Margin:        deriveMargin(row),
			Source:        row.Source,
			RawRow:        string(trace),
		})
	}

	return Tables{
		Suppliers: suppliers,
		Clients:   clients,
		Trades:    trades,
		Seed:      buildSeed(cfg.Import, suppliers),
	}, nil
}

// deriveMargin uses the recorded margin when present, otherwise the
// sell/buy difference.
func deriveMargin(row model.RawRow) decimal.Decimal {
	if !row.MarginRaw.IsZero() {
		return row.MarginRaw
	}
	return row.SellPriceRaw.Sub(row.BuyPriceRaw)
}

// deriveCategory back-fills an empty category from the brand, then from
// the first word of the item description. The result is always
// title-cased.
func deriveCategory(row model.RawRow) string {
	category := row.CategoryRaw
	if category == "" {
		if row.BrandRaw != "" {
			category = row.BrandRaw
		} else if fields := strings.Fields(row.ItemRaw); len(fields) > 0 {
			category = fields[0]
		}
	}
	return parse.TitleCase(category)
}

// buildSeed projects the legacy suppliers into the live supplier table
// shape, stamped with the import defaults.
func buildSeed(imp config.ImportConfig, suppliers []model.LegacySupplier) []model.SupplierSeed {
	seed := make([]model.SupplierSeed, 0, len(suppliers))
	for _, s := range suppliers {
		seed = append(seed, model.SupplierSeed{
			ID:              s.ID,
			SupplierName:    s.SupplierClean,
			RawVariants:     s.RawVariants,
			RequiresReview:  s.RequiresReview,
			IsLegacy:        true,
			CreatedFrom:     imp.CreatedFrom,
			DefaultCurrency: imp.DefaultCurrency,
			FirstSeen:       s.FirstSeen,
			LastSeen:        s.LastSeen,
			TradeCount:      s.TradeCount,
		})
	}
	return seed
}
