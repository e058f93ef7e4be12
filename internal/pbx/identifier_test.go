package pbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorShape(t *testing.T) {
	var gen Generator

	id, err := gen.Next(sampleManifest)
	require.NoError(t, err)
	assert.True(t, IsIdentifier(id), "Next() = %q, want %d uppercase hex digits", id, IdentifierLen)
}

func TestGeneratorRejectsManifestCollision(t *testing.T) {
	// First candidate already identifies ContentView.swift in the
	// manifest and must be discarded.
	seq := []string{"7555FF7A242A565900829871", "ABCDEF0123456789ABCDEF01"}
	i := 0
	gen := Generator{Random: func() string { id := seq[i]; i++; return id }}

	id, err := gen.Next(sampleManifest)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF0123456789ABCDEF01", id)
}

func TestGeneratorRejectsEarlierDraws(t *testing.T) {
	// The second draw repeats the first candidate before producing a
	// fresh one.
	seq := []string{
		"AAAAAAAAAAAAAAAAAAAAAAAA",
		"AAAAAAAAAAAAAAAAAAAAAAAA",
		"BBBBBBBBBBBBBBBBBBBBBBBB",
	}
	i := 0
	gen := Generator{Random: func() string { id := seq[i]; i++; return id }}

	first, err := gen.Next("")
	require.NoError(t, err)
	second, err := gen.Next("")
	require.NoError(t, err)

	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAAA", first)
	assert.Equal(t, "BBBBBBBBBBBBBBBBBBBBBBBB", second)
}

func TestGeneratorExhaustion(t *testing.T) {
	gen := Generator{Random: func() string { return "7555FF7A242A565900829871" }}

	_, err := gen.Next(sampleManifest)
	assert.ErrorIs(t, err, ErrIdentifierExhausted)
}

func TestGeneratorManyDrawsAllDistinct(t *testing.T) {
	var gen Generator
	seen := make(map[string]bool)

	for i := 0; i < 64; i++ {
		id, err := gen.Next(sampleManifest)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"valid", "ABCDEF0123456789ABCDEF01", true},
		{"all digits", "012345678901234567890123", true},
		{"lowercase", "abcdef0123456789abcdef01", false},
		{"too short", "ABCDEF", false},
		{"too long", "ABCDEF0123456789ABCDEF0123", false},
		{"non-hex letter", "GHIJKL0123456789ABCDEF01", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIdentifier(tt.s))
		})
	}
}
