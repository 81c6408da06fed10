package catalog

import (
	"testing"
	"time"
)

func TestFooterString(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	tests := []struct {
		name   string
		footer Footer
		style  FooterStyle
		want   string
	}{
		{"comment", Footer{Version: V2, Count: 2, Timestamp: at}, FooterComment, "/*  meta:v2,2,2024-01-02_03:04:05  */"},
		{"plain", Footer{Version: V2, Count: 10, Timestamp: at}, FooterPlain, "  meta:v2,10,2024-01-02_03:04:05"},
		{"legacy", Footer{Version: V1, Count: 1, Timestamp: at}, FooterComment, "/*  meta:v1:1:2024-01-02_03:04:05  */"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.footer.String(tt.style); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFooterRoundTrip(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	for _, style := range []FooterStyle{FooterComment, FooterPlain} {
		for _, v := range []Version{V1, V2} {
			in := Footer{Version: v, Count: 42, Timestamp: at}
			got, ok, err := ParseFooter(in.String(style))
			if !ok || err != nil {
				t.Fatalf("%s/%s: ok=%v err=%v", style, v, ok, err)
			}
			if got.Version != v || got.Count != 42 || !got.Timestamp.Equal(at) {
				t.Fatalf("%s/%s: unexpected footer %+v", style, v, got)
			}
		}
	}
}

func TestParseFooterNotAFooter(t *testing.T) {
	for _, line := range []string{"  Sub1", "MagA", ""} {
		if _, ok, _ := ParseFooter(line); ok {
			t.Errorf("%q must not be recognized as a footer", line)
		}
	}
}

func TestParseFooterBadTimestampIsIgnored(t *testing.T) {
	f, ok, err := ParseFooter("/*  meta:v2,3,yesterday  */")
	if !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if f.Count != 3 || !f.Timestamp.IsZero() {
		t.Fatalf("unexpected footer %+v", f)
	}
}

func TestParseFooterStyle(t *testing.T) {
	if s, err := ParseFooterStyle(""); err != nil || s != FooterComment {
		t.Fatalf("expected default comment style, got %q, %v", s, err)
	}
	if s, err := ParseFooterStyle("Plain"); err != nil || s != FooterPlain {
		t.Fatalf("expected plain style, got %q, %v", s, err)
	}
	if _, err := ParseFooterStyle("fancy"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}
