package formatter

import (
	"strings"
	"testing"

	"lifelist/internal/models"
)

func TestFormatTable(t *testing.T) {
	observations := []models.Observation{
		{Date: "2021-11-02", SciName: "Cyanocitta cristata", Common: "Blue Jay", Location: "Prospect Park", Region: "US-NY"},
		{Date: "2023-05-10", SciName: "Turdus migratorius", Common: "American Robin", Location: "Central Park", Region: "US-NY"},
	}

	got := FormatTable(observations)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Header, separator, two data rows.
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), got)
	}

	if !strings.Contains(lines[0], "COMMON NAME") {
		t.Errorf("Header line missing column title: %s", lines[0])
	}

	if !strings.HasPrefix(lines[1], "| ---") {
		t.Errorf("Second line should be a separator: %s", lines[1])
	}

	// All rows align to the same display width.
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Errorf("Line %d width = %d, want %d: %q", i, len(line), width, line)
		}
	}

	if !strings.Contains(got, "Blue Jay") || !strings.Contains(got, "Turdus migratorius") {
		t.Error("Table missing observation values")
	}
}

func TestFormatTable_Empty(t *testing.T) {
	got := FormatTable(nil)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Header and separator only.
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines for empty set, got %d:\n%s", len(lines), got)
	}
}
