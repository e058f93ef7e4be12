package pbx

import "strings"

// RemoveIdentifiers deletes every line containing any of ids and returns
// the updated text plus the number of lines removed. The line is the
// unit of removal: an identifier takes its whole line with it, which is
// safe for records this tool wrote because InsertRecord gives every
// record its own line.
func RemoveIdentifiers(text string, ids []string) (string, int) {
	if len(ids) == 0 {
		return text, 0
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if containsAny(line, ids) {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	if removed == 0 {
		return text, 0
	}
	return strings.Join(kept, "\n"), removed
}

// ContainsIdentifier reports whether id occurs anywhere in text.
func ContainsIdentifier(text, id string) bool {
	return strings.Contains(text, id)
}

func containsAny(line string, ids []string) bool {
	for _, id := range ids {
		if strings.Contains(line, id) {
			return true
		}
	}
	return false
}
