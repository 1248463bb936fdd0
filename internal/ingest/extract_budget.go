package ingest

import (
	"github.com/Callmewookie65/planboard/internal/models"
)

// lookupAmount resolves the first key matching the candidate family and
// coerces its value to a number.
func lookupAmount(rec RawRecord, candidates []string) (float64, bool) {
	k, ok := findKeyLoose(rec, candidates)
	if !ok {
		return 0, false
	}
	return ToNumber(rec[k]), true
}

// resolveBudgetAmounts scans a record's keys with the shared budget key
// families and returns the used/total pair. When no used-like key exists,
// used is derived from total − remaining, or from total × percentage.
// Both results are clamped to >= 0.
func resolveBudgetAmounts(rec RawRecord) (used, total float64) {
	total, _ = lookupAmount(rec, totalBudgetKeys)

	// A "percentUsed" column contains "used", so resolve the percent key up
	// front and keep the used lookup away from it.
	pctKey, pctFound := findKeyLoose(rec, percentUsedKeys)

	usedFound := false
	if k, ok := findKeyLoose(rec, usedBudgetKeys); ok && !(pctFound && k == pctKey) {
		used = ToNumber(rec[k])
		usedFound = true
	}

	if !usedFound && total > 0 {
		if remaining, ok := lookupAmount(rec, remainingBudgetKeys); ok {
			used = total - remaining
		} else if pctFound {
			used = total * ToNumber(rec[pctKey]) / 100
		}
	}

	if used < 0 {
		used = 0
	}
	if total < 0 {
		total = 0
	}
	return used, total
}

// budgetIdentifier resolves which project a budget row belongs to: the id
// key family is tried before the name family, and the search stops at the
// first family that yields a non-empty value.
func budgetIdentifier(rec RawRecord) string {
	if k, ok := findKeyExact(rec, projectIDKeys); ok {
		if s := cleanText(rec[k].Text()); s != "" {
			return s
		}
	}
	if k, ok := findKeyExact(rec, projectNameKeys); ok {
		if s := cleanText(rec[k].Text()); s != "" {
			return s
		}
	}
	return ""
}

// ExtractBudgets builds a BudgetMap from a budget document. Rows without a
// resolvable identifier are dropped silently; rows where both amounts are
// zero are dropped; later rows for the same identifier overwrite earlier
// ones.
func ExtractBudgets(records []RawRecord) models.BudgetMap {
	out := models.BudgetMap{}
	for _, rec := range records {
		ident := budgetIdentifier(rec)
		if ident == "" {
			continue
		}
		used, total := resolveBudgetAmounts(rec)
		if used <= 0 && total <= 0 {
			continue
		}
		out[ident] = models.Budget{Used: used, Total: total}
	}
	return out
}
