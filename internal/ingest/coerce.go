package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// currencyReplacer drops currency symbols and thousands separators before
// numeric parsing.
var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", "¥", "", ",", "")

// leadingNumberPattern salvages the numeric prefix of strings like "75%"
// or "1200 PLN" after the full parse fails.
var leadingNumberPattern = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)

// ToNumber extracts a canonical number from a loosely typed cell. Numbers
// pass through; strings are parsed after currency symbols and thousands
// separators are stripped; anything else is 0. Never fails.
func ToNumber(v Value) float64 {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		s := strings.TrimSpace(currencyReplacer.Replace(v.Str))
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if prefix := leadingNumberPattern.FindString(s); prefix != "" {
			if f, err := strconv.ParseFloat(prefix, 64); err == nil {
				return f
			}
		}
		return 0
	default:
		return 0
	}
}

// dateLayouts mirror the loose date spellings seen in dashboard exports.
// ISO forms go first; day-first forms cover European exports.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// ToISODate extracts a canonical YYYY-MM-DD date from a cell. Numeric cells
// are treated as Unix milliseconds, the encoding JSON exports carry. Returns
// an empty string when no date can be constructed. Never fails.
func ToISODate(v Value) string {
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return ""
		}
		return time.UnixMilli(int64(v.Num)).UTC().Format("2006-01-02")
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return ""
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC().Format("2006-01-02")
			}
		}
		return ""
	default:
		return ""
	}
}

// ToEnum maps a loosely spelled cell onto one of candidates. Resolution
// order: separator- and case-insensitive exact match, then bidirectional
// substring containment, then the default. Always returns a member of
// candidates (or the default). There is no synonym table: spellings that
// share no substring with a candidate fall to the default.
func ToEnum(v Value, candidates []string, def string) string {
	raw := strings.ToLower(strings.TrimSpace(v.Text()))
	if raw == "" {
		return def
	}

	folded := foldKey(raw)
	for _, c := range candidates {
		if foldKey(c) == folded {
			return c
		}
	}
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(raw, lc) || strings.Contains(lc, raw) {
			return c
		}
	}
	return def
}
