package parser

import "testing"

func TestResolveYear(t *testing.T) {
	tests := []struct {
		period string
		want   string
	}{
		{"2024-01-01 to 2024-01-31", "2024"},
		{"statement for 2025-04-01", "2025"},
		{"January to March", fallbackYear},
		{"", fallbackYear},
	}

	for _, tt := range tests {
		if got := resolveYear(tt.period); got != tt.want {
			t.Errorf("resolveYear(%q) = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		month, day string
		want       string
	}{
		{"April", "3", "2025-04-03"},
		{"January", "15", "2025-01-15"},
		{"December", "9", "2025-12-09"},
	}

	for _, tt := range tests {
		if got := formatDate("2025", tt.month, tt.day); got != tt.want {
			t.Errorf("formatDate(2025, %q, %q) = %q, want %q", tt.month, tt.day, got, tt.want)
		}
	}
}

func TestSplitDateSections(t *testing.T) {
	text := "preamble\nApril 2\nfirst day content\nApril 3\nsecond day content"

	sections := splitDateSections(text, "2025")
	if len(sections) != 2 {
		t.Fatalf("sections: got %d, want 2", len(sections))
	}

	if sections[0].date != "2025-04-02" {
		t.Errorf("sections[0].date = %q", sections[0].date)
	}
	if sections[0].content != "\nfirst day content\n" {
		t.Errorf("sections[0].content = %q", sections[0].content)
	}
	if sections[1].date != "2025-04-03" {
		t.Errorf("sections[1].date = %q", sections[1].date)
	}
	if sections[1].content != "\nsecond day content" {
		t.Errorf("sections[1].content = %q", sections[1].content)
	}
}

func TestSplitDateSectionsNoHeaders(t *testing.T) {
	if got := splitDateSections("no headers at all", "2025"); len(got) != 0 {
		t.Errorf("expected no sections, got %v", got)
	}
}
