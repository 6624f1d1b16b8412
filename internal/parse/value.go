package parse

import "time"

type kind int

const (
	kindEmpty kind = iota
	kindString
	kindNumber
	kindTime
)

// Value is one spreadsheet cell as read from a source: text, a number,
// a native date/time, or empty. The zero Value is the empty cell.
type Value struct {
	kind kind
	str  string
	num  float64
	time time.Time
}

// String wraps a text cell. An empty string is the empty cell.
func String(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: kindString, str: s}
}

// Number wraps a numeric cell.
func Number(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// Time wraps a native date/time cell.
func Time(t time.Time) Value {
	return Value{kind: kindTime, time: t}
}

// IsEmpty reports whether the cell held no value.
func (v Value) IsEmpty() bool {
	return v.kind == kindEmpty
}
