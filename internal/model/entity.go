package model

// EntityAudit summarizes every raw row that folded into one canonical
// entity. Built once per run from the full row set; never mutated after
// construction.
type EntityAudit struct {
	CleanName      string   `json:"clean_name"`
	RawVariants    []string `json:"raw_variants"` // sorted, deduplicated
	Sources        []string `json:"sources"`      // sorted, deduplicated
	RowNumbers     []int    `json:"row_numbers,omitempty"`
	Statuses       []string `json:"client_statuses,omitempty"` // sorted; clients only
	TradeCount     int      `json:"trade_count"`
	FirstSeen      Date     `json:"first_seen"`
	LastSeen       Date     `json:"last_seen"`
	RequiresReview bool     `json:"requires_review"`
	Reason         string   `json:"reason,omitempty"`
}

// LegacySupplier is the persisted form of a supplier audit: the audit
// plus an assigned identifier. Identifiers are fresh per run.
type LegacySupplier struct {
	ID             string   `json:"id"`
	SupplierClean  string   `json:"supplier_clean"`
	RawVariants    []string `json:"raw_variants"`
	RequiresReview bool     `json:"requires_review"`
	Reason         string   `json:"reason"`
	FirstSeen      Date     `json:"first_seen"`
	LastSeen       Date     `json:"last_seen"`
	TradeCount     int      `json:"trade_count"`
}

// LegacyClient is the persisted form of a client audit.
type LegacyClient struct {
	ID             string   `json:"id"`
	ClientClean    string   `json:"client_clean"`
	RawVariants    []string `json:"raw_variants"`
	ClientStatus   string   `json:"client_status"` // comma-joined sorted distinct statuses
	FirstSeen      Date     `json:"first_seen"`
	LastSeen       Date     `json:"last_seen"`
	TradeCount     int      `json:"trade_count"`
	RequiresReview bool     `json:"requires_review"`
}

// SupplierSeed is a supplier-table-shaped projection of a LegacySupplier
// suitable for direct import into the live system.
type SupplierSeed struct {
	ID              string   `json:"id"`
	SupplierName    string   `json:"supplier_name"`
	RawVariants     []string `json:"raw_variants"`
	RequiresReview  bool     `json:"requires_review"`
	IsLegacy        bool     `json:"is_legacy"`
	CreatedFrom     string   `json:"created_from"`
	DefaultCurrency string   `json:"default_currency"`
	SupplierType    *string  `json:"supplier_type"`
	Notes           *string  `json:"notes"`
	FirstSeen       Date     `json:"first_seen"`
	LastSeen        Date     `json:"last_seen"`
	TradeCount      int      `json:"trade_count"`
}
