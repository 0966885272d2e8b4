// Package hook orchestrates one transcript generation run: it reads the
// triggering event payload, locates the relevant slice of conversation
// history, collects the assistant output and merges it into the session's
// markdown transcript.
package hook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"scribe/internal/config"
	"scribe/internal/document"
	"scribe/internal/transcript"
)

// Payload is the structured event delivered on standard input by the
// triggering process.
type Payload struct {
	TranscriptPath string `json:"transcript_path"`
	SessionID      string `json:"session_id"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
	Prompt         string `json:"prompt"`
}

// ParsePayload decodes a payload from r.
func ParsePayload(r io.Reader) (Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Payload{}, runErrorf(ClassPayload, "decoding payload: %w", err)
	}
	return p, nil
}

// Runner executes transcript generation runs.
type Runner struct {
	Config config.Config
	Logger *slog.Logger
	Now    func() time.Time
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TranscriptDir returns the directory transcripts are written to for cwd:
// the configured output directory if set, <cwd>/.claude/transcripts otherwise.
func (r *Runner) TranscriptDir(cwd string) string {
	if r.Config.OutputDir != "" {
		return r.Config.OutputDir
	}
	return filepath.Join(cwd, ".claude", "transcripts")
}

// Run performs one generation run. Every returned error is a *RunError; the
// caller decides whether to surface it (the hook boundary never does).
func (r *Runner) Run(p Payload) error {
	log := r.logger()

	if p.TranscriptPath == "" || p.SessionID == "" {
		return runErrorf(ClassPayload, "missing transcript_path or session_id")
	}

	trigger := transcript.Trigger(p.HookEventName)
	if trigger != transcript.TriggerPromptSubmit && trigger != transcript.TriggerSessionEnd {
		return runErrorf(ClassTrigger, "unrecognized event %q", p.HookEventName)
	}

	if _, err := os.Stat(p.TranscriptPath); err != nil {
		return runErrorf(ClassLog, "source log: %w", err)
	}

	store, err := document.NewStore(r.TranscriptDir(p.CWD), p.SessionID)
	if err != nil {
		return &RunError{Class: ClassStore, Err: err}
	}

	doc, err := store.Load()
	switch {
	case errors.Is(err, document.ErrNoDocument):
		// First event for this session: create the header-only document so
		// the session artifact exists even when this run adds no content.
		doc = document.Document{Header: document.NewHeader(p.SessionID, p.CWD, r.now())}
		if err := store.Save(doc); err != nil {
			return &RunError{Class: ClassStore, Err: err}
		}
	case err != nil:
		return &RunError{Class: ClassStore, Err: err}
	}

	records := transcript.ReadLog(p.TranscriptPath)
	prevPrompt, anchor, found := transcript.FindTargetPrompt(transcript.Reversed(records), trigger)
	responses, interrupted := transcript.CollectResponses(records, anchor)
	log.Debug("collected responses",
		"session_id", p.SessionID,
		"trigger", string(trigger),
		"records", len(records),
		"anchor_found", found,
		"interrupted", interrupted,
	)

	// A prompt-submit event with no prompt text carries nothing to merge.
	if trigger == transcript.TriggerPromptSubmit && p.Prompt == "" {
		return nil
	}

	assembler := document.Assembler{TimeFormat: r.Config.TimeFormat, Now: r.Now}
	next := assembler.Assemble(doc, trigger, p.Prompt, responses, interrupted, prevPrompt)
	if err := store.Save(next); err != nil {
		return &RunError{Class: ClassStore, Err: err}
	}
	log.Debug("transcript written", "path", store.Path())
	return nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
