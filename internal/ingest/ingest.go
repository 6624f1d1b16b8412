package ingest

import (
	"fmt"

	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/parse"
)

// Fixed positional column binding shared by every legacy ledger export.
const (
	colDate = iota
	colInvoice
	colClient
	colClientStatus
	colSupplier
	colItem
	colBrand
	colCategory
	colBuyPrice
	colSellPrice
	colMargin
)

// ReadRows converts a source into an ordered RawRow sequence. Row 1 is
// the header and is never emitted; fully-empty rows are skipped without
// consuming a row number. RowNumber is the 1-based position in the
// file, so the first data row is numbered 2.
func ReadRows(src Source) ([]model.RawRow, error) {
	rows, err := src.Rows()
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src.Tag(), err)
	}

	var out []model.RawRow
	for i, cells := range rows {
		rowNumber := i + 1
		if rowNumber == 1 {
			continue
		}
		if allEmpty(cells) {
			continue
		}
		out = append(out, bindRow(cells, src.Tag(), rowNumber))
	}
	return out, nil
}

func allEmpty(cells []parse.Value) bool {
	for _, c := range cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// bindRow maps cells to fields positionally. Rows shorter than the full
// column count use the field defaults for the missing trailing columns.
func bindRow(cells []parse.Value, tag model.Source, rowNumber int) model.RawRow {
	return model.RawRow{
		Date:            parse.Date(cell(cells, colDate)),
		InvoiceNumber:   parse.Text(cell(cells, colInvoice)),
		ClientRaw:       parse.Text(cell(cells, colClient)),
		ClientStatusRaw: parse.Text(cell(cells, colClientStatus)),
		SupplierRaw:     parse.Text(cell(cells, colSupplier)),
		ItemRaw:         parse.Text(cell(cells, colItem)),
		BrandRaw:        parse.Text(cell(cells, colBrand)),
		CategoryRaw:     parse.Text(cell(cells, colCategory)),
		BuyPriceRaw:     parse.Price(cell(cells, colBuyPrice)),
		SellPriceRaw:    parse.Price(cell(cells, colSellPrice)),
		MarginRaw:       parse.Price(cell(cells, colMargin)),
		Source:          tag,
		RowNumber:       rowNumber,
	}
}

func cell(cells []parse.Value, idx int) parse.Value {
	if idx >= len(cells) {
		return parse.Value{}
	}
	return cells[idx]
}
