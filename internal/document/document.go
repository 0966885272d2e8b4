// Package document models the on-disk markdown transcript for one session:
// a fixed-size header followed by a growing body of turn entries, plus the
// merge logic that folds newly collected content into the body.
package document

import (
	"fmt"
	"strings"
	"time"
)

// headerLineCount is the rendered size of the header. It is part of the
// on-disk format: existing transcripts are split at this boundary, so the
// header template below must always render to exactly this many lines.
const headerLineCount = 8

// TimeFormat is the default timestamp layout used throughout a transcript.
const TimeFormat = "2006-01-02 15:04:05"

// Document is a transcript held as explicit header and body regions rather
// than positional line offsets. Render re-joins them byte-for-byte.
type Document struct {
	Header string
	Body   string
}

// NewHeader renders the fixed session header: title, session metadata and a
// separator, exactly headerLineCount lines.
func NewHeader(sessionID, cwd string, now time.Time) string {
	return fmt.Sprintf("# Claude Code Session\n\n**Session ID**: `%s`<br>\n**Started**: %s<br>\n**Working Directory**: `%s`<br>\n\n---\n\n",
		sessionID, now.Format(TimeFormat), cwd)
}

// Parse splits existing transcript content at the fixed header boundary.
// Content shorter than a full header is treated as empty: the assembler
// will rebuild from scratch rather than corrupt a partial document.
func Parse(data []byte) Document {
	lines := strings.SplitAfter(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) < headerLineCount {
		return Document{}
	}
	return Document{
		Header: strings.Join(lines[:headerLineCount], ""),
		Body:   strings.Join(lines[headerLineCount:], ""),
	}
}

// Render returns the complete document content.
func (d Document) Render() string {
	return d.Header + d.Body
}
