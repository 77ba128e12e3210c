package util

import (
	"strings"
	"testing"
	"time"
)

func ptr(s string) *string { return &s }

func TestSanitizePart(t *testing.T) {
	cases := map[string]string{
		"  St. Mary's School ": "st_marys_school",
		"ID-Card":               "id-card",
		"???":                   "unknown",
		"":                      "unknown",
	}
	for in, want := range cases {
		if got := SanitizePart(in); got != want {
			t.Fatalf("SanitizePart(%q)=%q want %q", in, got, want)
		}
	}
}

func TestObjectName(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := ObjectName("id-cards", "Asha Card.PNG", "image/png", "ab12", now)
	want := "id-cards/20260102030405_ab12_asha_card.png"
	if got != want {
		t.Fatalf("ObjectName=%q want %q", got, want)
	}

	got = ObjectName("circulars", "scan", "application/pdf", "x", now)
	if !strings.HasSuffix(got, "_scan.pdf") {
		t.Fatalf("ObjectName=%q want .pdf from mime", got)
	}
}

func TestJoinURL(t *testing.T) {
	if got := JoinURL("https://cdn.example.org/", "/a/b.png"); got != "https://cdn.example.org/a/b.png" {
		t.Fatalf("JoinURL=%q", got)
	}
	if got := PublicGCSURL("b", "o/x.pdf"); got != "https://storage.googleapis.com/b/o/x.pdf" {
		t.Fatalf("PublicGCSURL=%q", got)
	}
}

func TestClampAndSplitCSV(t *testing.T) {
	if got := Clamp("  héllo world ", 5); got != "héllo" {
		t.Fatalf("Clamp=%q", got)
	}
	if got := Clamp("abc", 0); got != "abc" {
		t.Fatalf("Clamp no limit=%q", got)
	}
	got := SplitCSV(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("SplitCSV=%v", got)
	}
	if SplitCSV("") != nil {
		t.Fatalf("SplitCSV empty should be nil")
	}
}

func TestParseDateRange(t *testing.T) {
	start, hasStart, end, hasEnd, err := ParseDateRange(ptr("2026-01-01"), ptr("2026-01-31"))
	if err != nil || !hasStart || !hasEnd {
		t.Fatalf("unexpected: %v %v %v", err, hasStart, hasEnd)
	}
	if !start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start=%v", start)
	}
	if !end.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date-only end should be exclusive next day, got %v", end)
	}

	_, _, end, hasEnd, err = ParseDateRange(nil, ptr("2026-01-31T10:00:00Z"))
	if err != nil || !hasEnd || end.Hour() != 10 {
		t.Fatalf("timestamp end: %v %v %v", err, hasEnd, end)
	}

	_, hasStart, _, hasEnd, err = ParseDateRange(ptr("  "), nil)
	if err != nil || hasStart || hasEnd {
		t.Fatalf("blank should be ignored")
	}

	if _, _, _, _, err = ParseDateRange(ptr("01/02/2026"), nil); err != ErrInvalidDate {
		t.Fatalf("err=%v want ErrInvalidDate", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("")
	if err != nil || ts != nil {
		t.Fatalf("empty: %v %v", ts, err)
	}

	ts, err = ParseTimestamp("2026-03-04T05:06:07.123456789Z")
	if err != nil || ts.Nanosecond() != 123456789 {
		t.Fatalf("rfc3339nano: %v %v", ts, err)
	}

	ts, err = ParseTimestamp("1767225600000")
	if err != nil || !ts.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unix ms: %v %v", ts, err)
	}

	if _, err = ParseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
}
