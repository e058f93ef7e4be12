package pbx

import (
	"fmt"
	"os"
)

// Document holds one project.pbxproj for a load, modify, save cycle.
// Mutations happen on the in-memory text; nothing reaches disk until Save.
type Document struct {
	path string
	text string
	mode os.FileMode
}

// Load reads the manifest at path into memory, remembering its file mode
// for Save.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return &Document{path: path, text: string(data), mode: info.Mode().Perm()}, nil
}

// Path returns the manifest location on disk.
func (d *Document) Path() string { return d.path }

// Text returns the current in-memory manifest text.
func (d *Document) Text() string { return d.text }

// SetText replaces the in-memory manifest text.
func (d *Document) SetText(text string) { d.text = text }

// Save writes the text to a sibling temp file and renames it over the
// original, keeping the original file mode.
func (d *Document) Save() error {
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(d.text), d.mode); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", d.path, err)
	}
	return nil
}
