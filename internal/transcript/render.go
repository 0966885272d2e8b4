package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Markdown fragments for the transcript body. The colored spans survive in
// most markdown viewers and degrade to plain bold text elsewhere.

// UserEntry renders a newly submitted user prompt with its timestamp.
func UserEntry(timestamp, text string) string {
	return fmt.Sprintf("**User (%s):** <span style=\"color: green;\">%s</span><br>\n\n", timestamp, text)
}

// UserLine renders a user prompt without a timestamp (re-inserted prior turns).
func UserLine(text string) string {
	return fmt.Sprintf("**User:** <span style=\"color: green;\">%s</span><br>\n\n", text)
}

// AssistantText renders one assistant text block.
func AssistantText(text string) string {
	return fmt.Sprintf("**Assistant:** %s\n\n", text)
}

// InterruptedMarker renders the status marker for a turn that ended without
// a normal completion reason.
func InterruptedMarker() string {
	return "<span style=\"color: red;\">**[Interrupted]**</span>\n\n"
}

// SessionEndedMarker renders the terminal status marker.
func SessionEndedMarker(timestamp string) string {
	return fmt.Sprintf("<span style=\"color: blue;\">**[Session Ended: %s]**</span>\n\n", timestamp)
}

// ToolUse renders a tool invocation as a collapsible details section. When a
// matching result is found in records, it is included as the output block.
func ToolUse(block ContentBlock, records []Record) string {
	var sb strings.Builder
	sb.WriteString("<details>\n")
	fmt.Fprintf(&sb, "<summary>🔧 <strong>%s</strong></summary>\n\n", block.Name)
	sb.WriteString("**Input:**\n```json\n")
	sb.WriteString(prettyJSON(block.Input))
	sb.WriteString("\n```\n")

	if out, ok := findToolResult(records, block.ID); ok {
		sb.WriteString("\n**Output:**\n```\n")
		sb.WriteString(out)
		sb.WriteString("\n```\n")
	}

	sb.WriteString("</details>\n<br>\n\n")
	return sb.String()
}

// findToolResult locates the result paired with a tool call identifier.
// Matching is structured: a tool_result record whose first matching content
// block carries the same tool_use_id. First match wins. Any failure along
// the way degrades to "no output shown".
func findToolResult(records []Record, toolUseID string) (string, bool) {
	if toolUseID == "" {
		return "", false
	}
	for i := range records {
		rec := &records[i]
		if rec.Type != TypeToolResult {
			continue
		}
		for _, b := range rec.Message.Content.Blocks {
			if b.ToolUseID == toolUseID {
				return renderResultContent(b.Content), true
			}
		}
		// Legacy logs omit the block-level identifier; fall back to the
		// record's raw line when it mentions the call.
		if strings.Contains(rec.Raw, toolUseID) && len(rec.Message.Content.Blocks) > 0 {
			return renderResultContent(rec.Message.Content.Blocks[0].Content), true
		}
	}
	return "", false
}

// renderResultContent displays a tool result payload: plain text when the
// inner content is a string, the raw JSON otherwise.
func renderResultContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// prettyJSON re-indents a raw payload for display; falls back to the raw
// bytes when they are not valid JSON.
func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// RenderFull formats an entire record sequence as a transcript body: every
// valid user prompt followed by the assistant output of that turn. Used by
// the live watcher, where no merge against an existing document happens.
func RenderFull(records []Record) string {
	var sb strings.Builder
	for i := range records {
		rec := &records[i]
		switch rec.Type {
		case TypeUser:
			text := rec.PromptText()
			if text == "" || text == "null" {
				continue
			}
			sb.WriteString(UserLine(text))
		case TypeAssistant:
			for _, block := range rec.Message.Content.Blocks {
				switch block.Type {
				case BlockText:
					if block.Text != "" {
						sb.WriteString(AssistantText(block.Text))
					}
				case BlockToolUse:
					sb.WriteString(ToolUse(block, records))
				}
			}
		}
	}
	return sb.String()
}
