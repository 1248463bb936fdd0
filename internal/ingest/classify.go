package ingest

import (
	"strings"
)

// DocumentType is decided once per document, not per record.
type DocumentType string

const (
	DocTypeProject DocumentType = "project"
	DocTypeTask    DocumentType = "task"
	DocTypeBudget  DocumentType = "budget"
	DocTypeUnknown DocumentType = "unknown"
)

// Classification evidence signals. File names are a stronger, cheaper signal
// than content sniffing, so a file-name hint is trusted unconditionally.
const (
	signalFileName = 1.0
	signalContent  = 0.7
	signalNone     = 0.0
)

type fileNameHint struct {
	keywords []string
	docType  DocumentType
}

// fileNameHints are checked in order; the first hit wins.
var fileNameHints = []fileNameHint{
	{keywords: []string{"budget", "finance"}, docType: DocTypeBudget},
	{keywords: []string{"task", "jira", "sprint"}, docType: DocTypeTask},
	{keywords: []string{"project", "charter"}, docType: DocTypeProject},
}

// Classify decides whether a document describes a project, a set of tasks or
// a budget. File-name hints win over content; without one, the key set of
// the first record is scanned against the shared keyword lists in
// budget > task > project priority. Returns the type and the evidence signal
// that produced it.
func Classify(fileName string, records []RawRecord) (DocumentType, float64) {
	lower := strings.ToLower(fileName)
	for _, hint := range fileNameHints {
		for _, kw := range hint.keywords {
			if strings.Contains(lower, kw) {
				return hint.docType, signalFileName
			}
		}
	}

	if len(records) == 0 {
		return DocTypeUnknown, signalNone
	}

	folded := make([]string, 0, len(records[0]))
	for _, k := range sortedKeys(records[0]) {
		folded = append(folded, foldKey(k))
	}

	contentHints := []struct {
		keywords []string
		docType  DocumentType
	}{
		{budgetKeywords, DocTypeBudget},
		{taskKeywords, DocTypeTask},
		{projectKeywords, DocTypeProject},
	}
	for _, hint := range contentHints {
		for _, kw := range hint.keywords {
			fkw := foldKey(kw)
			for _, key := range folded {
				if strings.Contains(key, fkw) {
					return hint.docType, signalContent
				}
			}
		}
	}

	return DocTypeUnknown, signalNone
}
