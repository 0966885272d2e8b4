package hook

import "fmt"

// Class categorizes why a run could not proceed. Every class is suppressed
// at the command boundary, but classification keeps the orchestration
// deterministic under test instead of relying on swallowed failures.
type Class int

const (
	// ClassPayload: the input payload was malformed or missing required fields.
	ClassPayload Class = iota
	// ClassTrigger: the triggering event is not one this tool handles.
	ClassTrigger
	// ClassLog: the source conversation log is missing or unreadable.
	ClassLog
	// ClassStore: the transcript could not be created or replaced on disk.
	ClassStore
)

func (c Class) String() string {
	switch c {
	case ClassPayload:
		return "payload"
	case ClassTrigger:
		return "trigger"
	case ClassLog:
		return "log"
	case ClassStore:
		return "store"
	default:
		return "unknown"
	}
}

// RunError is a classified orchestration failure.
type RunError struct {
	Class Class
	Err   error
}

func (e *RunError) Error() string {
	if e.Err == nil {
		return e.Class.String()
	}
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

func runErrorf(class Class, format string, args ...any) *RunError {
	return &RunError{Class: class, Err: fmt.Errorf(format, args...)}
}
