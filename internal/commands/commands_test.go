package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/club19-dev/ledgerlift/internal/config"
	"github.com/club19-dev/ledgerlift/internal/export"
	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/runlog"
)

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, false))

	cfg, err := config.Load(filepath.Join(dir, "ledgerlift.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Import.DefaultCurrency)
	assert.Equal(t, "Galaxy VIC", cfg.Suppliers.Merge["Galaxy"])
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, false))
	err := runInit(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, runInit(dir, true))
}

func TestImport_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	ledger := "Date,Invoice,Client,Status,Supplier,Item,Brand,Category,Buy,Sell,Margin\n" +
		"15/03/2023,INV-001,Acme Ltd,Active,Galaxy,leather tote,Mulberry,Bags,1000,1500,500\n"
	ledgerPath := filepath.Join(dir, "hope.csv")
	require.NoError(t, os.WriteFile(ledgerPath, []byte(ledger), 0o644))

	outDir := filepath.Join(dir, "out")
	err := runImport([]string{"Hope=" + ledgerPath}, outDir, filepath.Join(dir, "no-config.yaml"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, export.TradesFile))
	require.NoError(t, err)

	var trades []model.LegacyTrade
	require.NoError(t, json.Unmarshal(data, &trades))
	require.Len(t, trades, 1)
	assert.Equal(t, "INV-001", trades[0].InvoiceNumber)
	assert.Equal(t, model.Source("Hope"), trades[0].Source)

	entries, err := runlog.Read(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Rows)
	assert.Equal(t, "Hope", entries[0].Sources)
}

func TestImport_BadSourceSpec(t *testing.T) {
	err := runImport([]string{"hope.csv"}, t.TempDir(), "ledgerlift.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag=path")
}

func TestImport_MissingFileAborts(t *testing.T) {
	dir := t.TempDir()
	err := runImport([]string{"Hope=" + filepath.Join(dir, "absent.csv")}, dir, filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hope")
}
