package transcript

// Trigger identifies which lifecycle event invoked a transcript run.
type Trigger string

const (
	// TriggerPromptSubmit fires when a new user turn is submitted.
	TriggerPromptSubmit Trigger = "UserPromptSubmit"
	// TriggerSessionEnd fires when the session ends.
	TriggerSessionEnd Trigger = "SessionEnd"
)

// targetOrdinal returns which most-recent user entry the trigger anchors on:
// the 1st for SessionEnd (the prompt the final responses belong to), the 2nd
// for UserPromptSubmit (the previous turn, whose responses are now complete).
func (t Trigger) targetOrdinal() int {
	if t == TriggerSessionEnd {
		return 1
	}
	return 2
}

// FindTargetPrompt walks records most-recent-first and returns the text and
// record of the trigger's target user entry. Entries whose extracted text is
// empty or the literal "null" do not count toward the ordinal; the walk
// continues further back. Returns ok=false when the stream is exhausted
// before a valid match.
func FindTargetPrompt(reversed []Record, trigger Trigger) (string, *Record, bool) {
	target := trigger.targetOrdinal()
	count := 0
	for i := range reversed {
		rec := &reversed[i]
		if rec.Type != TypeUser {
			continue
		}
		count++
		if count < target {
			continue
		}
		text := rec.PromptText()
		if text != "" && text != "null" {
			return text, rec, true
		}
		// Invalid prompt text: pretend this entry did not exist.
		count = target - 1
	}
	return "", nil, false
}
