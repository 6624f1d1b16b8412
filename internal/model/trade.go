package model

import "github.com/shopspring/decimal"

// LegacyTrade is one raw row joined to its resolved entities. RawClient
// and RawSupplier keep the original strings for audit; RawRow carries
// the full original row serialized as JSON for traceability.
type LegacyTrade struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TradeDate     Date            `json:"trade_date"`
	RawClient     string          `json:"raw_client"`
	RawSupplier   string          `json:"raw_supplier"`
	ClientID      string          `json:"client_id"`
	SupplierID    string          `json:"supplier_id"`
	Item          string          `json:"item"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	BuyPrice      decimal.Decimal `json:"buy_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Margin        decimal.Decimal `json:"margin"`
	Source        Source          `json:"source"`
	RawRow        string          `json:"raw_row"`
}
