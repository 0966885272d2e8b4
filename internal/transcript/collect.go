package transcript

import "strings"

// CollectResponses gathers everything the assistant produced strictly after
// the anchor record, in order, until end of stream. It returns the formatted
// markdown body and whether any assistant turn ended without a normal
// completion reason. A nil anchor yields an empty result.
func CollectResponses(records []Record, anchor *Record) (string, bool) {
	if anchor == nil {
		return "", false
	}

	var sb strings.Builder
	interrupted := false
	collecting := false

	for i := range records {
		rec := &records[i]
		if !collecting {
			if rec.Index == anchor.Index {
				collecting = true
			}
			continue
		}
		if rec.Type != TypeAssistant {
			continue
		}
		if rec.Interrupted() {
			interrupted = true
		}
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
	return sb.String(), interrupted
}
