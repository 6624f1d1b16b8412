package model

import "github.com/shopspring/decimal"

// Source tags the legacy ledger a row came from.
type Source string

const (
	SourceHope Source = "Hope"
	SourceMC   Source = "MC"
)

// RawRow is one ledger entry as read from a source, after cell-level
// parsing but before any entity resolution. Immutable once created.
type RawRow struct {
	Date            Date            `json:"date"`
	InvoiceNumber   string          `json:"invoice_number"`
	ClientRaw       string          `json:"client_raw"`
	ClientStatusRaw string          `json:"client_status_raw"`
	SupplierRaw     string          `json:"supplier_raw"`
	ItemRaw         string          `json:"item_raw"`
	BrandRaw        string          `json:"brand_raw"`
	CategoryRaw     string          `json:"category_raw"`
	BuyPriceRaw     decimal.Decimal `json:"buy_price_raw"`
	SellPriceRaw    decimal.Decimal `json:"sell_price_raw"`
	MarginRaw       decimal.Decimal `json:"margin_raw"`
	Source          Source          `json:"source"`
	RowNumber       int             `json:"row_number"` // 1-based position in the source file, header = row 1
}
