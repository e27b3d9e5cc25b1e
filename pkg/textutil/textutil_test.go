package textutil

import (
	"testing"
	"time"
)

func TestIsBlankOrNA(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty string", "", true},
		{"Whitespace only", "  \t ", true},
		{"Upper NA", "NA", true},
		{"Lower na", "na", true},
		{"Slash variant", "N/A", true},
		{"Slash variant lower", "n/a", true},
		{"Padded placeholder", "  N/A  ", true},
		{"Real value", "Hong Kong", false},
		{"Value containing na", "nation", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBlankOrNA(tc.input); got != tc.want {
				t.Errorf("IsBlankOrNA(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestReformatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"ISO date", "2024-03-05", "20240305"},
		{"Slash date", "2024/03/05", "20240305"},
		{"Verbose date", "March 5, 2024", "20240305"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReformatDate(tc.value, "20060102")
			if err != nil {
				t.Fatalf("ReformatDate(%q): %v", tc.value, err)
			}
			if got != tc.want {
				t.Errorf("ReformatDate(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestReformatDateFailure(t *testing.T) {
	if _, err := ReformatDate("not a date at all", "20060102"); err == nil {
		t.Fatal("ReformatDate with garbage input returned nil error")
	}
}

func TestDaysSince(t *testing.T) {
	tenDaysAgo := time.Now().AddDate(0, 0, -10).Format("20060102")
	days, ok := DaysSince(tenDaysAgo, "20060102")
	if !ok {
		t.Fatalf("DaysSince(%q) not ok", tenDaysAgo)
	}
	// The parsed date is midnight, so the elapsed span is 9-10 whole days
	// depending on the current time of day.
	if days < 9 || days > 10 {
		t.Errorf("DaysSince(%q) = %d, want 9 or 10", tenDaysAgo, days)
	}
}

func TestDaysSinceInvalid(t *testing.T) {
	if days, ok := DaysSince("yesterday", "20060102"); ok {
		t.Errorf("DaysSince(\"yesterday\") = (%d, true), want ok=false", days)
	}
}
