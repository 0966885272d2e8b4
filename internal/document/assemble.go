package document

import (
	"strings"
	"time"

	"scribe/internal/transcript"
)

// Assembler merges newly collected turn content into a transcript document.
// The zero value uses the package defaults; tests override Now for
// deterministic timestamps.
type Assembler struct {
	TimeFormat string
	Now        func() time.Time
}

func (a Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a Assembler) timestamp() string {
	layout := a.TimeFormat
	if layout == "" {
		layout = TimeFormat
	}
	return a.now().Format(layout)
}

// Assemble produces the new document for a triggering event. doc is the
// existing transcript (header untouched in either strategy), prompt the
// newly submitted user text (prompt-submit only), responses the collected
// assistant output belonging to prevPrompt, and interrupted whether that
// output ended without a normal completion reason.
func (a Assembler) Assemble(doc Document, trigger transcript.Trigger, prompt, responses string, interrupted bool, prevPrompt string) Document {
	if trigger == transcript.TriggerSessionEnd {
		return Document{Header: doc.Header, Body: a.assembleSessionEnd(doc.Body, responses)}
	}
	return Document{Header: doc.Header, Body: a.assemblePromptSubmit(doc.Body, prompt, responses, interrupted, prevPrompt)}
}

// assemblePromptSubmit puts the new prompt on top. The previous top entry is
// superseded: its completed exchange (previous prompt, collected responses,
// status marker) is re-inserted after a separator, then the rest of the old
// body follows with its first two lines dropped.
func (a Assembler) assemblePromptSubmit(body, prompt, responses string, interrupted bool, prevPrompt string) string {
	var sb strings.Builder

	if prompt != "" {
		sb.WriteString(transcript.UserEntry(a.timestamp(), prompt))
	}
	if body == "" {
		return sb.String()
	}

	sb.WriteString("---\n\n")
	if prevPrompt != "" {
		sb.WriteString(transcript.UserLine(prevPrompt))
	}
	if responses != "" {
		sb.WriteString(responses)
		if interrupted {
			sb.WriteString(transcript.InterruptedMarker())
		}
	}

	old := strings.Split(body, "\n")
	if len(old) > 2 {
		sb.WriteString(strings.Join(old[2:], "\n"))
	}
	return sb.String()
}

// assembleSessionEnd splices the final responses and a session-ended marker
// right after the first user entry of the body (that entry is the prompt the
// responses belong to). When there is no user entry or nothing was collected,
// everything is appended instead.
func (a Assembler) assembleSessionEnd(body, responses string) string {
	marker := transcript.SessionEndedMarker(a.timestamp())

	if body == "" || responses == "" {
		return body + responses + marker
	}

	lines := strings.Split(body, "\n")
	idx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "**User") {
			idx = i
			break
		}
	}
	if idx == -1 {
		return body + responses + marker
	}

	// Keep the user line plus the blank line that follows it.
	end := idx + 2
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(lines[:end], "\n"))
	sb.WriteString("\n")
	sb.WriteString(responses)
	sb.WriteString(marker)
	sb.WriteString(strings.Join(lines[end:], "\n"))
	return sb.String()
}
