package timeutil

import (
	"testing"
	"time"
)

func TestFormatStamp(t *testing.T) {
	at := time.Date(2024, 3, 7, 9, 5, 1, 0, time.Local)
	if got := FormatStamp(at); got != "2024-03-07_09:05:01" {
		t.Fatalf("unexpected stamp: %s", got)
	}
}

func TestParseStampRoundTrip(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 58, 0, time.Local)
	got, err := ParseStamp(FormatStamp(at))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
}

func TestParseStampInvalid(t *testing.T) {
	if _, err := ParseStamp("2023-12-31 23:59"); err == nil {
		t.Fatalf("expected error for invalid stamp")
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{90 * time.Second, "1m30s"},
		{(7*24+2*24+6)*time.Hour + 30*time.Minute, "1w2d"},
		{3 * time.Hour, "3h"},
	}
	for _, tt := range tests {
		if got := FormatAge(tt.in); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
