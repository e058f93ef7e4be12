package pbx

import "strings"

// InsertRecord splices record into sec as a whole line at the tail of the
// span, keeping the span's closing anchor on its own line. Returns the
// updated text and whether anything changed: a span that already contains
// an identical record is returned untouched.
//
// Existing members keep their order; new records always append after
// them.
func InsertRecord(text string, sec Section, record string) (string, bool) {
	inner := text[sec.Start:sec.End]
	if strings.Contains(inner, record) {
		return text, false
	}

	// The last newline in the span starts the closing anchor's line
	// (its indentation, for member lists). Insert just after it.
	var updated string
	if idx := strings.LastIndexByte(inner, '\n'); idx >= 0 {
		updated = inner[:idx+1] + record + "\n" + inner[idx+1:]
	} else {
		// Single-line span, e.g. "children = ();".
		updated = inner + "\n" + record + "\n"
	}
	return text[:sec.Start] + updated + text[sec.End:], true
}
