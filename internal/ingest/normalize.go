package ingest

import (
	"regexp"
	"strings"
)

var (
	separatorReplacer = strings.NewReplacer("-", " ", "_", " ")
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
)

// NormalizeText lowercases, turns `-`/`_` into spaces, strips everything that
// is not a word character or whitespace, and trims. The result is only ever
// used as a comparison key, never stored.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = separatorReplacer.Replace(s)
	s = nonWordPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// foldKey collapses a source key to a normalized, whitespace-free form so
// that "Budget Total", "budget_total" and "budgetTotal" all compare equal.
func foldKey(s string) string {
	return strings.Join(strings.Fields(NormalizeText(s)), "")
}

// Similarity scores two free-form strings in [0,1]. Equal normalized strings
// score 1.0; an empty side scores 0. Substring containment is checked before
// token overlap so near-duplicate short strings ("Budget" vs "Budget ") rank
// ahead of strings that merely share words.
func Similarity(a, b string) float64 {
	na, nb := NormalizeText(a), NormalizeText(b)
	if na == nb {
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}

	la, lb := len([]rune(na)), len([]rune(nb))
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return float64(min(la, lb)) / float64(max(la, lb))
	}

	ta, tb := tokenSet(na), tokenSet(nb)
	common := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			common++
		}
	}
	denom := max(len(ta), len(tb))
	if denom == 0 {
		return 0
	}
	return float64(common) / float64(denom)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
