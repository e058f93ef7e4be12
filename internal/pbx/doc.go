// Package pbx reads, patches, and writes Xcode project.pbxproj manifests
// at the text level.
//
// # Overview
//
// A project.pbxproj is a cross-referenced object graph serialized as
// annotated text. This package never parses the full graph; it locates
// the handful of regions that matter for adding a source file (the
// PBXFileReference and PBXBuildFile tables, a group's children list, a
// build phase's files list), splices records into them, and can remove
// those records again by identifier.
//
// # Working model
//
//	doc, err := pbx.Load("App.xcodeproj/project.pbxproj")
//	sec, err := pbx.FindSection(doc.Text(), "PBXFileReference")
//	updated, changed := pbx.InsertRecord(doc.Text(), sec, record)
//	doc.SetText(updated)
//	err = doc.Save()
//
// All transformation functions are pure: they take manifest text and
// return new text, so callers decide when anything reaches disk. Save is
// atomic (temp file plus rename); a failed run leaves the manifest
// exactly as it was loaded.
//
// # Records and lines
//
// Every record this package writes occupies exactly one line, and
// RemoveIdentifiers removes whole lines. Insert-then-remove therefore
// restores the original manifest byte for byte.
package pbx
