package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Amount
	}{
		{"100", 10000},
		{"100.5", 10050},
		{"0.01", 1},
		{" 40.00 ", 4000},
		{"100.005", 10001}, // half away from zero
		{"99.994", 9999},
		{"-12.50", -1250},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12,50", "1.2.3"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("Parse(%q) expected error", input)
		}
	}
}

func TestString(t *testing.T) {
	if got := Amount(10050).String(); got != "100.50" {
		t.Fatalf("String() = %q, want 100.50", got)
	}
	if got := Amount(-1).String(); got != "-0.01" {
		t.Fatalf("String() = %q, want -0.01", got)
	}
	if got := Amount(0).String(); got != "0.00" {
		t.Fatalf("String() = %q, want 0.00", got)
	}
}

func TestJSONNumberCompatibility(t *testing.T) {
	data, err := json.Marshal(Amount(10050))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "100.50" {
		t.Fatalf("marshal = %s, want 100.50", data)
	}

	// Blobs written by the old frontend hold plain numbers like 100.5.
	var fromNumber Amount
	if err := json.Unmarshal([]byte("100.5"), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber != 10050 {
		t.Fatalf("unmarshal number = %d, want 10050", fromNumber)
	}

	var fromString Amount
	if err := json.Unmarshal([]byte(`"60"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString != 6000 {
		t.Fatalf("unmarshal string = %d, want 6000", fromString)
	}
}
