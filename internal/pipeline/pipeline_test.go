package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/club19-dev/ledgerlift/internal/config"
	"github.com/club19-dev/ledgerlift/internal/id"
	"github.com/club19-dev/ledgerlift/internal/ingest"
	"github.com/club19-dev/ledgerlift/internal/model"
)

const hopeCSV = `Date,Invoice,Client,Status,Supplier,Item,Brand,Category,Buy,Sell,Margin
15/03/2023,INV-001,Acme Ltd,Active,Galaxy,leather tote bag,Mulberry,Bags,"£1,000.00","£1,500.00",500
20/04/2023,INV-002,acme ltd,Closed,Galaxy Vic,silk scarf,Dior,,400,650,
,,,,,,,,,,
02/05/2023,INV-003,Beta Co,Active,TSUM,watch strap,,,"£90.00","£140.00",
`

const mcCSV = `Date,Invoice,Client,Status,Supplier,Item,Brand,Category,Buy,Sell,Margin
07/06/2023,INV-101,ACME LTD,Active,Galaxy VIC,leather belt,,,200,320,
08/06/2023,INV-102,,,,"unknown lot",,,,,
`

func writeSources(t *testing.T) (hope, mc ingest.Source) {
	t.Helper()
	dir := t.TempDir()

	hopePath := filepath.Join(dir, "hope.csv")
	require.NoError(t, os.WriteFile(hopePath, []byte(hopeCSV), 0o644))
	mcPath := filepath.Join(dir, "mc.csv")
	require.NoError(t, os.WriteFile(mcPath, []byte(mcCSV), 0o644))

	return ingest.NewCSV(hopePath, model.SourceHope), ingest.NewCSV(mcPath, model.SourceMC)
}

func runOnce(t *testing.T) *Result {
	t.Helper()
	hope, mc := writeSources(t)
	res, err := Run(config.Default(), id.NewSequence("rec"), hope, mc)
	require.NoError(t, err)
	return res
}

func TestRun_Counts(t *testing.T) {
	res := runOnce(t)

	assert.Equal(t, 3, res.SourceCounts[model.SourceHope], "empty row is not counted")
	assert.Equal(t, 2, res.SourceCounts[model.SourceMC])
	assert.Len(t, res.Trades, 5)
}

func TestRun_SupplierResolution(t *testing.T) {
	res := runOnce(t)

	// Galaxy VIC (merged), TSUM (review), Unknown (empty).
	require.Len(t, res.Suppliers, 3)
	assert.Equal(t, "Galaxy VIC", res.Suppliers[0].SupplierClean)
	assert.Equal(t, []string{"Galaxy", "Galaxy VIC", "Galaxy Vic"}, res.Suppliers[0].RawVariants)
	assert.Equal(t, []string{"Hope", "MC"}, res.SupplierAudits[0].Sources)

	assert.Equal(t, "TSUM", res.Suppliers[1].SupplierClean)
	assert.True(t, res.Suppliers[1].RequiresReview)

	assert.Equal(t, "Unknown", res.Suppliers[2].SupplierClean)
	assert.True(t, res.Suppliers[2].RequiresReview)

	assert.Equal(t, "Galaxy VIC", res.SupplierMap["Galaxy"].Clean)
	assert.True(t, res.SupplierMap["TSUM"].RequiresReview)
}

func TestRun_ClientResolution(t *testing.T) {
	res := runOnce(t)

	// acme ltd, beta co, unknown.
	require.Len(t, res.Clients, 3)
	acme := res.Clients[0]
	assert.Equal(t, "acme ltd", acme.ClientClean)
	assert.Equal(t, 3, acme.TradeCount)
	assert.True(t, acme.RequiresReview, "Active and Closed statuses conflict")

	beta := res.Clients[1]
	assert.Equal(t, "beta co", beta.ClientClean)
	assert.False(t, beta.RequiresReview)
}

func TestRun_ReferentialIntegrity(t *testing.T) {
	res := runOnce(t)

	supplierIDs := make(map[string]bool)
	for _, s := range res.Suppliers {
		supplierIDs[s.ID] = true
	}
	clientIDs := make(map[string]bool)
	for _, c := range res.Clients {
		clientIDs[c.ID] = true
	}

	for _, trade := range res.Trades {
		assert.True(t, supplierIDs[trade.SupplierID], "trade %s supplier id", trade.InvoiceNumber)
		assert.True(t, clientIDs[trade.ClientID], "trade %s client id", trade.InvoiceNumber)
	}
}

func TestRun_DerivedFields(t *testing.T) {
	res := runOnce(t)

	byInvoice := make(map[string]model.LegacyTrade)
	for _, trade := range res.Trades {
		byInvoice[trade.InvoiceNumber] = trade
	}

	assert.Equal(t, "500", byInvoice["INV-001"].Margin.String())
	assert.Equal(t, "250", byInvoice["INV-002"].Margin.String(), "650 - 400")
	assert.Equal(t, "Bags", byInvoice["INV-001"].Category)
	assert.Equal(t, "Dior", byInvoice["INV-002"].Category, "brand back-fill")
	assert.Equal(t, "Watch", byInvoice["INV-003"].Category, "first item word back-fill")
	assert.Equal(t, "Leather", byInvoice["INV-101"].Category)
	assert.Equal(t, "Unknown", byInvoice["INV-102"].Category)
}

func TestRun_DateRange(t *testing.T) {
	res := runOnce(t)

	first, last := res.DateRange()
	assert.Equal(t, "2023-03-15", first.String())
	assert.Equal(t, "2023-06-08", last.String())
}

func TestRun_Deterministic(t *testing.T) {
	res1 := runOnce(t)
	res2 := runOnce(t)

	// Same generator seed, so even IDs match; in production only the
	// IDs may differ between runs.
	assert.Equal(t, res1.SupplierAudits, res2.SupplierAudits)
	assert.Equal(t, res1.Suppliers, res2.Suppliers)
	assert.Equal(t, res1.Clients, res2.Clients)
	assert.Equal(t, res1.Trades, res2.Trades)
	assert.Equal(t, res1.SupplierSeed, res2.SupplierSeed)
}

func TestRun_MissingSourceAborts(t *testing.T) {
	missing := ingest.NewCSV(filepath.Join(t.TempDir(), "absent.csv"), model.SourceHope)
	_, err := Run(config.Default(), id.UUID{}, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hope")
}
