// Package parse converts raw spreadsheet cell values into typed fields.
// Unparseable input never produces an error: dates fold to the zero
// Date, prices to decimal zero, text to the empty string.
package parse

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/club19-dev/ledgerlift/internal/model"
)

// Legacy spreadsheets serialize dates as a day count from 1899-12-30.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order against string cells; unpadded day and
// month digits are accepted. Day-first layouts come first because the
// ledgers are UK-kept.
var dateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2006-1-2",
	"1/2/2006",
}

// Date parses a cell into a calendar date. Native date/time values have
// their time-of-day discarded; numbers are treated as legacy serial day
// counts; strings are matched against dateLayouts. Returns the zero
// Date if the cell is empty or matches nothing.
func Date(v Value) model.Date {
	switch v.kind {
	case kindTime:
		return model.NewDate(v.time)
	case kindNumber:
		if !finite(v.num) {
			return model.Date{}
		}
		return model.NewDate(serialEpoch.AddDate(0, 0, int(v.num)))
	case kindString:
		s := strings.TrimSpace(v.str)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return model.NewDate(t)
			}
		}
	}
	return model.Date{}
}

// Price parses a cell into a decimal amount. Currency symbols and
// thousands separators are stripped from strings. Empty or unparseable
// cells yield zero.
func Price(v Value) decimal.Decimal {
	switch v.kind {
	case kindNumber:
		if !finite(v.num) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v.num)
	case kindString:
		clean := strings.NewReplacer("£", "", "$", "", ",", "").Replace(strings.TrimSpace(v.str))
		d, err := decimal.NewFromString(clean)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

// finite rejects the NaN and infinity values decimal.NewFromFloat
// panics on; such cells fold to the parser defaults instead.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Text renders a cell as a trimmed string; empty cells yield "".
func Text(v Value) string {
	switch v.kind {
	case kindString:
		return strings.TrimSpace(v.str)
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindTime:
		return model.NewDate(v.time).String()
	}
	return ""
}

// TitleCase capitalizes the first letter of each whitespace-separated
// token and lowercases the rest.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
