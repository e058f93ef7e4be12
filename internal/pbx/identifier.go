package pbx

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IdentifierLen is the length of a manifest object identifier in hex
// digits. Xcode's own identifiers share this shape.
const IdentifierLen = 24

// maxDraws bounds how many colliding candidates Next tolerates before
// giving up.
const maxDraws = 32

// Generator draws identifiers for new manifest records.
//
// Candidates are 24 uppercase hex digits taken from a random UUID. Next
// rejects any candidate that already occurs in the manifest text or was
// drawn earlier by the same Generator, so every identifier handed out
// during a run is unique even before its record lands in the text.
type Generator struct {
	// Random supplies candidate identifiers. Nil means UUID-derived
	// randomness; tests swap in a deterministic sequence.
	Random func() string

	drawn map[string]bool
}

// Next returns a fresh identifier absent from text.
func (g *Generator) Next(text string) (string, error) {
	for i := 0; i < maxDraws; i++ {
		id := g.draw()
		if g.drawn[id] || strings.Contains(text, id) {
			continue
		}
		if g.drawn == nil {
			g.drawn = make(map[string]bool)
		}
		g.drawn[id] = true
		return id, nil
	}
	return "", fmt.Errorf("drew %d colliding candidates: %w", maxDraws, ErrIdentifierExhausted)
}

func (g *Generator) draw() string {
	if g.Random != nil {
		return g.Random()
	}
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:IdentifierLen]
}

// IsIdentifier reports whether s has the shape of a manifest object
// identifier: exactly IdentifierLen uppercase hex digits.
func IsIdentifier(s string) bool {
	if len(s) != IdentifierLen {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return false
		}
	}
	return true
}
