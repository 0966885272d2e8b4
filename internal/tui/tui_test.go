package tui

import (
	"strings"
	"testing"
)

func TestStripSpans(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`**User:** <span style="color: green;">hi</span><br>`, "**User:** hi"},
		{`no tags here`, "no tags here"},
		{`<span broken`, `<span broken`},
		{`a<br>b<br>`, "ab"},
	}
	for _, tc := range cases {
		if got := stripSpans(tc.in); got != tc.want {
			t.Errorf("stripSpans(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStyleTranscriptKeepsLineCount(t *testing.T) {
	content := "# Claude Code Session\n\n**User:** <span style=\"color: green;\">hi</span><br>\n\n**Assistant:** hello\n"
	styled := styleTranscript(content)
	if strings.Count(styled, "\n") != strings.Count(content, "\n") {
		t.Errorf("styling changed the line count:\n%q\n%q", content, styled)
	}
}
