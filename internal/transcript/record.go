// Package transcript parses Claude Code conversation logs (one JSON record
// per line) and formats assistant output as markdown.
package transcript

import "encoding/json"

// Record type values we act on. Anything else passes through untouched.
const (
	TypeUser       = "user"
	TypeAssistant  = "assistant"
	TypeToolResult = "tool_result"
)

// Content block kinds inside a message.
const (
	BlockText    = "text"
	BlockToolUse = "tool_use"
)

// Record is one parsed line of a conversation log.
type Record struct {
	Type    string  `json:"type"`
	Message Message `json:"message"`

	// Raw is the original log line and Index its position in the file.
	// Both are set by the reader, not decoded from JSON.
	Raw   string `json:"-"`
	Index int    `json:"-"`
}

// Message carries the content of a user/assistant/tool_result record.
type Message struct {
	Content    Content `json:"content"`
	StopReason *string `json:"stop_reason"`
}

// Content is either a plain string or an ordered list of content blocks.
type Content struct {
	Text   string
	Blocks []ContentBlock
	IsText bool
}

// ContentBlock is one tagged unit inside a message's content. Only the
// fields relevant to its Type are populated.
type ContentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
}

// UnmarshalJSON accepts both content shapes found in conversation logs:
// a bare string and a list of blocks. Any other shape is ignored so a
// malformed message never fails the whole record.
func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		c.IsText = true
		return nil
	}
	var blocks []ContentBlock
	if err := json.Unmarshal(data, &blocks); err == nil {
		c.Blocks = blocks
	}
	return nil
}

// PromptText extracts the user-visible text from a record: the first
// block's text when content is a list, the content itself when it is a
// plain string, empty otherwise.
func (r *Record) PromptText() string {
	if r.Message.Content.IsText {
		return r.Message.Content.Text
	}
	if len(r.Message.Content.Blocks) > 0 {
		return r.Message.Content.Blocks[0].Text
	}
	return ""
}

// Interrupted reports whether an assistant record ended without a normal
// completion reason.
func (r *Record) Interrupted() bool {
	return r.Message.StopReason == nil || *r.Message.StopReason == ""
}
