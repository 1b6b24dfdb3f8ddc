package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderStatusLine(t *testing.T) {
	want := "  Git:" + strings.Repeat(" ", 16) + " [OK] /usr/bin/git"
	if got := renderStatusLine("Git", statusOK, "/usr/bin/git", false); got != want {
		t.Fatalf("plain line:\nwant %q\ngot  %q", want, got)
	}
	colored := renderStatusLine("Git", statusWarn, "", true)
	if !strings.HasPrefix(colored, ansiYellow) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected yellow line, got %q", colored)
	}
	if !strings.Contains(colored, "[WARN]") {
		t.Fatalf("expected WARN label, got %q", colored)
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode string
		want bool
	}{
		{"always", true},
		{"never", false},
		{"auto", false},
		{" Always ", true},
	}
	for _, tt := range tests {
		if got := colorEnabled(tt.mode, &buf); got != tt.want {
			t.Fatalf("colorEnabled(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview("Brevity is\n\tthe soul of wit.\n"); got != "Brevity is the soul of wit." {
		t.Fatalf("unexpected preview %q", got)
	}
	long := strings.Repeat("word ", 30)
	got := preview(long)
	if utf8.RuneCountInString(got) != previewWidth || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncated preview of %d runes, got %q", previewWidth, got)
	}
}

func TestWriteFortune(t *testing.T) {
	for _, text := range []string{"plain", "with newline\n"} {
		var buf bytes.Buffer
		if err := writeFortune(&buf, text); err != nil {
			t.Fatalf("writeFortune: %v", err)
		}
		if !strings.HasSuffix(buf.String(), "\n") || strings.HasSuffix(buf.String(), "\n\n") {
			t.Fatalf("unexpected output %q", buf.String())
		}
	}
}

func TestRenderWordCountsEmpty(t *testing.T) {
	out := renderWordCounts(nil)
	if !strings.Contains(out, "Rank") {
		t.Fatalf("expected header in empty table, got %q", out)
	}
}
