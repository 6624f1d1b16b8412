package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/club19-dev/ledgerlift/internal/model"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]any{
		"A1": "Date", "B1": "Invoice", "C1": "Client", "D1": "Status", "E1": "Supplier",
		"F1": "Item", "G1": "Brand", "H1": "Category", "I1": "Buy", "J1": "Sell", "K1": "Margin",
		"A2": 44197, "B2": "INV-100", "C2": "Acme Ltd", "D2": "Active", "E2": "Galaxy",
		"F2": "leather tote", "G2": "Mulberry", "H2": "", "I2": 1000, "J2": 1500, "K2": 500,
		// Row 3 left fully empty on purpose.
		"A4": "15/03/2024", "B4": "INV-101", "C4": "ACME LTD", "D4": "Closed", "E4": "",
	}
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}

	path := filepath.Join(t.TempDir(), "hope.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSX_ReadRows(t *testing.T) {
	path := writeTestWorkbook(t)

	rows, err := ReadRows(NewXLSX(path, model.SourceHope))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.RowNumber)
	assert.Equal(t, "2021-01-01", first.Date.String(), "serial 44197 is 2021-01-01")
	assert.Equal(t, "INV-100", first.InvoiceNumber)
	assert.Equal(t, "1000", first.BuyPriceRaw.String())
	assert.Equal(t, model.SourceHope, first.Source)

	second := rows[1]
	assert.Equal(t, 4, second.RowNumber, "empty row 3 is skipped but keeps its position")
	assert.Equal(t, "2024-03-15", second.Date.String())
	assert.Equal(t, "ACME LTD", second.ClientRaw)
	assert.Empty(t, second.SupplierRaw)
}

func TestXLSX_MissingFile(t *testing.T) {
	_, err := ReadRows(NewXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), model.SourceHope))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hope", "errors identify the failing source")
}

func TestCSV_ReadRows(t *testing.T) {
	content := "Date,Invoice,Client,Status,Supplier,Item,Brand,Category,Buy,Sell,Margin\n" +
		"15/03/2024,INV-200,Beta Co,Active,STOCK,silk scarf,Dior,,£400.00,£650.00,250\n" +
		",,,,,,,,,,\n" +
		"16/03/2024,INV-201,Beta Co,Active,Galaxy Vic\n"

	path := filepath.Join(t.TempDir(), "mc.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadRows(NewCSV(path, model.SourceMC))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].RowNumber)
	assert.Equal(t, "STOCK", rows[0].SupplierRaw)
	assert.Equal(t, "400", rows[0].BuyPriceRaw.String())
	assert.Equal(t, 4, rows[1].RowNumber)
	assert.Equal(t, "Galaxy Vic", rows[1].SupplierRaw)
	assert.True(t, rows[1].BuyPriceRaw.IsZero(), "short row defaults trailing columns")
}

func TestCSV_MissingFile(t *testing.T) {
	_, err := ReadRows(NewCSV(filepath.Join(t.TempDir(), "absent.csv"), model.SourceMC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MC")
}
