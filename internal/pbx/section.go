package pbx

import (
	"fmt"
	"regexp"
)

// Section is a located span of manifest text. Start and End bound the
// inner content between the region's anchors; both offsets index into
// the text the section was located on, so a section must be re-located
// after any edit.
type Section struct {
	Name  string
	Start int
	End   int
}

// Inner returns the section's content from text.
func (s Section) Inner(text string) string {
	return text[s.Start:s.End]
}

// FindSection locates a flat object table bounded by
// "/* Begin <name> section */" and "/* End <name> section */" markers.
// The first match wins; a manifest with duplicate markers is outside
// this package's contract.
func FindSection(text, name string) (Section, error) {
	re := regexp.MustCompile(`(?s)/\* Begin ` + regexp.QuoteMeta(name) +
		` section \*/(.*?)/\* End ` + regexp.QuoteMeta(name) + ` section \*/`)
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Section{}, fmt.Errorf("locating %s section: %w", name, ErrSectionNotFound)
	}
	return Section{Name: name + " section", Start: loc[2], End: loc[3]}, nil
}

// FindGroupChildren locates the children list of the first group defined
// with the given name. The anchor is the group's own definition
// ("/* <name> */ = {"), not references to it from parent groups, and the
// match cannot leave the anchored object's braces, so a same-named
// object of another kind (a build phase has no children list) is skipped
// rather than matched against a later group's list.
func FindGroupChildren(text, group string) (Section, error) {
	sec, err := findMemberList(text, group, "children")
	if err != nil {
		return Section{}, fmt.Errorf("locating %s group: %w", group, err)
	}
	sec.Name = group + " group children"
	return sec, nil
}

// FindPhaseFiles locates the files list of the first build phase defined
// with the given name, anchored and bounded the same way
// FindGroupChildren is. A group sharing the phase's name has no files
// list and is skipped.
func FindPhaseFiles(text, phase string) (Section, error) {
	sec, err := findMemberList(text, phase, "files")
	if err != nil {
		return Section{}, fmt.Errorf("locating %s build phase: %w", phase, err)
	}
	sec.Name = phase + " phase files"
	return sec, nil
}

// findMemberList captures the named list field of the first object
// definition annotated "/* <name> */" that carries it. Header fields
// between the opening brace and the list hold no braces, so [^{}] pins
// the scan inside the anchored object; a definition lacking the field
// fails there and the next definition of the name is tried.
func findMemberList(text, name, field string) (Section, error) {
	re := regexp.MustCompile(`(?s)/\* ` + regexp.QuoteMeta(name) + ` \*/ = \{[^{}]*?` +
		field + ` = \((.*?)\);`)
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Section{}, ErrSectionNotFound
	}
	return Section{Start: loc[2], End: loc[3]}, nil
}
