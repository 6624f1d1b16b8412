// Package export writes the pipeline's collections as one JSON document
// each, the import format the downstream database tooling consumes.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/club19-dev/ledgerlift/internal/pipeline"
)

// Output file names, one per collection.
const (
	SupplierMapFile   = "supplier_normalisation_map.json"
	SupplierAuditFile = "supplier_audit_table.json"
	SuppliersFile     = "legacy_suppliers.json"
	ClientsFile       = "legacy_clients.json"
	TradesFile        = "legacy_trades.json"
	SupplierSeedFile  = "suppliers_live_seed.json"
)

// Write emits all six collections into dir, creating it if needed.
func Write(dir string, res *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{SupplierMapFile, res.SupplierMap},
		{SupplierAuditFile, res.SupplierAudits},
		{SuppliersFile, res.Suppliers},
		{ClientsFile, res.Clients},
		{TradesFile, res.Trades},
		{SupplierSeedFile, res.SupplierSeed},
	}

	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.data); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
