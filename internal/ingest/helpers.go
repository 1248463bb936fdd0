package ingest

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// normalizeSpace collapses multiple spaces into one and trims the string.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanText normalizes whitespace (alias for normalizeSpace)
func cleanText(s string) string {
	return normalizeSpace(s)
}

// sanitizeHTML uses bluemonday to strip unsafe tags and attributes from HTML.
func sanitizeHTML(html string) string {
	p := bluemonday.UGCPolicy()
	return p.Sanitize(html)
}

// htmlToText flattens markup in a description cell to plain text. Rich-text
// exports embed HTML in free-text columns; plain cells pass straight through.
func htmlToText(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return cleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitizeHTML(s)))
	if err != nil {
		return cleanText(s)
	}
	return cleanText(doc.Text())
}

// mergeUniqueFold appends items to dst, dropping blanks and case-insensitive
// duplicates.
func mergeUniqueFold(dst []string, items []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, v := range dst {
		k := strings.ToLower(strings.TrimSpace(v))
		if k != "" {
			seen[k] = struct{}{}
		}
	}

	for _, v := range items {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			continue
		}
		dst = append(dst, v)
		seen[k] = struct{}{}
	}

	return dst
}

// sortedKeys returns the record's keys in a stable order so key scans and
// similarity tie-breaks are deterministic across runs.
func sortedKeys(rec RawRecord) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// findKeyExact returns the first record key whose folded form equals one of
// the candidates, visiting candidates in declared order.
func findKeyExact(rec RawRecord, candidates []string) (string, bool) {
	keys := sortedKeys(rec)
	for _, cand := range candidates {
		fc := foldKey(cand)
		for _, k := range keys {
			if foldKey(k) == fc {
				return k, true
			}
		}
	}
	return "", false
}

// findKeyLoose matches like findKeyExact but falls back to folded substring
// containment, so "Total Budget (PLN)" still satisfies "totalBudget".
func findKeyLoose(rec RawRecord, candidates []string) (string, bool) {
	if k, ok := findKeyExact(rec, candidates); ok {
		return k, true
	}
	keys := sortedKeys(rec)
	for _, cand := range candidates {
		fc := foldKey(cand)
		for _, k := range keys {
			if strings.Contains(foldKey(k), fc) {
				return k, true
			}
		}
	}
	return "", false
}
