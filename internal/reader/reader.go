// Package reader is the file-reading collaborator of the ingestion engine:
// it turns uploaded CSV/JSON/text payloads into raw records with a stable,
// header-derived key set per row. It does no schema validation beyond shape
// checks; everything downstream is the engine's job.
package reader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Callmewookie65/planboard/internal/ingest"
)

// ErrUnsupportedFormat is returned for files the dashboard cannot ingest.
// Binary spreadsheet formats are deliberately unsupported.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parse converts an uploaded document into raw records. The extension picks
// the decoder; .txt payloads are sniffed for JSON or a delimited table.
func Parse(fileName string, r io.Reader) ([]ingest.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return parseDelimited(r, ',')
	case ".tsv":
		return parseDelimited(r, '\t')
	case ".json":
		return parseJSON(r)
	case ".txt":
		return parseText(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}

func parseDelimited(r io.Reader, comma rune) ([]ingest.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var records []ingest.RawRecord
	for _, row := range rows[1:] {
		rec := ingest.RawRecord{}
		for i, h := range header {
			h = strings.TrimSpace(h)
			if h == "" || i >= len(row) {
				continue
			}
			rec[h] = ingest.StringValue(strings.TrimSpace(row[i]))
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records, nil
}

func parseJSON(r io.Reader) ([]ingest.RawRecord, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	switch t := v.(type) {
	case map[string]any:
		return []ingest.RawRecord{recordFromMap(t)}, nil
	case []any:
		var records []ingest.RawRecord
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				records = append(records, recordFromMap(m))
			}
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: json document must be an object or an array of objects", ErrUnsupportedFormat)
	}
}

func recordFromMap(m map[string]any) ingest.RawRecord {
	rec := make(ingest.RawRecord, len(m))
	for k, v := range m {
		rec[k] = ingest.FromAny(v)
	}
	return rec
}

// parseText sniffs the payload: leading '{' or '[' means JSON, a tab in the
// header line means TSV, anything else is treated as comma-delimited.
func parseText(r io.Reader) ([]ingest.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	body := strings.TrimPrefix(string(data), "\uFEFF")
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return parseJSON(strings.NewReader(trimmed))
	}

	headerLine, _, _ := strings.Cut(trimmed, "\n")
	if strings.Contains(headerLine, "\t") {
		return parseDelimited(strings.NewReader(trimmed), '\t')
	}
	return parseDelimited(strings.NewReader(trimmed), ',')
}
