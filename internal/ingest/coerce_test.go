package ingest

import (
	"testing"
	"time"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		in       Value
		expected float64
	}{
		{"number passes through", NumberValue(42), 42},
		{"euro with thousands separator", StringValue("1,234.50 €"), 1234.50},
		{"dollar prefix", StringValue("$50,000"), 50000},
		{"pound", StringValue("£300"), 300},
		{"percent suffix", StringValue("75%"), 75},
		{"trailing currency code", StringValue("1200 PLN"), 1200},
		{"negative", StringValue("-5"), -5},
		{"plain", StringValue("3.14"), 3.14},
		{"unparsable", StringValue("not a number"), 0},
		{"empty string", StringValue(""), 0},
		{"null", NullValue(), 0},
		{"bool", BoolValue(true), 0},
		{"object", ObjectValue(map[string]Value{"total": NumberValue(5)}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNumber(tt.in); got != tt.expected {
				t.Errorf("ToNumber = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToISODate(t *testing.T) {
	tests := []struct {
		name     string
		in       Value
		expected string
	}{
		{"rfc3339", StringValue("2025-06-30T00:00:00Z"), "2025-06-30"},
		{"plain iso", StringValue("2026-03-15"), "2026-03-15"},
		{"iso with time", StringValue("2026-03-15 09:30:00"), "2026-03-15"},
		{"dotted day first", StringValue("15.03.2026"), "2026-03-15"},
		{"month name", StringValue("March 15, 2026"), "2026-03-15"},
		{"unix milliseconds", NumberValue(float64(time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).UnixMilli())), "2025-06-30"},
		{"not a date", StringValue("not a date"), ""},
		{"empty", StringValue(""), ""},
		{"null", NullValue(), ""},
		{"bool", BoolValue(true), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToISODate(tt.in); got != tt.expected {
				t.Errorf("ToISODate = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestToEnum(t *testing.T) {
	statuses := []string{"todo", "inProgress", "done"}

	tests := []struct {
		name       string
		in         Value
		candidates []string
		def        string
		expected   string
	}{
		{"exact case-insensitive", StringValue("Done"), statuses, "todo", "done"},
		{"separator-insensitive exact", StringValue("In Progress"), statuses, "todo", "inProgress"},
		{"candidate contained in value", StringValue("high priority"), []string{"low", "medium", "high"}, "medium", "high"},
		{"value contained in candidate", StringValue("complet"), []string{"active", "completed"}, "active", "completed"},
		{"foreign spelling falls to default", StringValue("ZAKOŃCZONY-ish"), []string{"active", "completed"}, "active", "active"},
		{"empty falls to default", StringValue(""), statuses, "todo", "todo"},
		{"null falls to default", NullValue(), statuses, "todo", "todo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToEnum(tt.in, tt.candidates, tt.def)
			if got != tt.expected {
				t.Errorf("ToEnum = %q, want %q", got, tt.expected)
			}
		})
	}
}
