package transcript

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

// ReadLog parses a conversation log file into records in original order.
// Unparseable lines are skipped; a missing or unreadable file yields an
// empty slice. Never returns an error: transcript generation is best-effort
// and the caller treats an empty log the same as an absent one.
func ReadLog(path string) []Record {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	// Tool results can carry large payloads on a single line.
	const maxCapacity = 8 * 1024 * 1024
	scanner.Buffer(make([]byte, 1024), maxCapacity)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		rec.Raw = line
		rec.Index = len(records)
		records = append(records, rec)
	}
	return records
}

// Reversed returns a copy of records in reverse chronological order
// (most recent first), for lookup use.
func Reversed(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[len(records)-1-i] = rec
	}
	return out
}
