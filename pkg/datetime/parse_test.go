package datetime

import (
	"testing"
	"time"
)

func TestFeedDateFormats(t *testing.T) {
	moment := time.Date(2026, time.March, 5, 14, 30, 15, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name     string
		format   func(time.Time) string
		expected string
	}{
		{"Sitemap date uses UTC day", SitemapDate, "2026-03-05"},
		{"RSS date", RSSDate, "Thu, 05 Mar 2026 19:30:15 +0000"},
		{"Atom date", AtomDate, "2026-03-05T19:30:15Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(moment); got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSitemapDateCrossesMidnight(t *testing.T) {
	late := time.Date(2026, time.March, 5, 22, 0, 0, 0, time.FixedZone("EST", -5*3600))
	if got := SitemapDate(late); got != "2026-03-06" {
		t.Errorf("SitemapDate() = %q, expected 2026-03-06", got)
	}
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(SitemapLayout, "2026-01-15")
	if parsed.Year() != 2026 || parsed.Month() != time.January || parsed.Day() != 15 {
		t.Errorf("unexpected parse result %v", parsed)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid date")
		}
	}()
	MustParseTime(SitemapLayout, "not-a-date")
}

func TestTruncateToSecond(t *testing.T) {
	moment := time.Date(2026, time.March, 5, 14, 30, 15, 999, time.UTC)
	truncated := TruncateToSecond(moment)
	if truncated.Nanosecond() != 0 {
		t.Errorf("expected no nanoseconds, got %d", truncated.Nanosecond())
	}
	parsed, err := time.Parse(AtomLayout, AtomDate(truncated))
	if err != nil {
		t.Fatalf("failed to parse Atom date: %v", err)
	}
	if !parsed.Equal(truncated) {
		t.Errorf("round trip changed time: %v vs %v", parsed, truncated)
	}
}
