package commands

import (
	"testing"
)

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	for _, test := range tests {
		id, err := spreadsheetID(test.url)
		if err != nil {
			t.Fatalf("Unexpected error returned from spreadsheetID (%v)", err)
		}

		if id != test.expected {
			t.Errorf("Incorrect spreadsheet ID for %s\n   expected: %s\n   got:      %s\n", test.url, test.expected, id)
		}
	}
}

func TestSpreadsheetIDWithInvalidURL(t *testing.T) {
	tests := []string{
		"",
		"https://docs.google.com/spreadsheets/d/",
		"https://docs.google.com/document/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"not a spreadsheet url",
	}

	for _, url := range tests {
		if id, err := spreadsheetID(url); err == nil {
			t.Errorf("Expected error for URL %q, got ID %q", url, id)
		}
	}
}
