package pbx

import (
	"fmt"
	"path"
	"strings"
)

// FileType describes how the manifest declares files of one extension.
type FileType struct {
	Tag     string `yaml:"tag"`     // lastKnownFileType value, e.g. "sourcecode.swift"
	Compile bool   `yaml:"compile"` // whether the file joins a compile build phase
}

// builtinTypes maps extensions to their declared manifest types. Headers
// are referenced but never compiled.
var builtinTypes = map[string]FileType{
	".swift": {Tag: "sourcecode.swift", Compile: true},
	".h":     {Tag: "sourcecode.c.h", Compile: false},
	".m":     {Tag: "sourcecode.c.objc", Compile: true},
	".mm":    {Tag: "sourcecode.cpp.objcpp", Compile: true},
	".c":     {Tag: "sourcecode.c.c", Compile: true},
	".cc":    {Tag: "sourcecode.cpp.cpp", Compile: true},
	".cpp":   {Tag: "sourcecode.cpp.cpp", Compile: true},
	".metal": {Tag: "sourcecode.metal", Compile: true},
}

// Classify resolves the declared type for filename. Mappings in extra
// (from configuration) take precedence over the built-in table; keys are
// extensions with the leading dot. An extension known to neither table
// is an error, never a guessed default.
func Classify(filename string, extra map[string]FileType) (FileType, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return FileType{}, fmt.Errorf("%s has no extension: %w", filename, ErrUnknownFileType)
	}
	if ft, ok := extra[ext]; ok {
		return ft, nil
	}
	if ft, ok := builtinTypes[ext]; ok {
		return ft, nil
	}
	return FileType{}, fmt.Errorf("%s: %w", filename, ErrUnknownFileType)
}

// FileReferenceRecord renders a PBXFileReference table record. filePath
// is the path stored in the manifest, usually prefix/filename.
func FileReferenceRecord(refID, filename, filePath, typeTag string) string {
	return fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; name = %s; path = %s; sourceTree = \"<group>\"; };",
		refID, filename, typeTag, filename, filePath)
}

// BuildFileRecord renders a PBXBuildFile table record tying a phase
// membership back to its file reference.
func BuildFileRecord(buildID, refID, filename, phase string) string {
	return fmt.Sprintf("\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };",
		buildID, filename, phase, refID, filename)
}

// GroupChildLine renders a membership line for a group's children list.
func GroupChildLine(refID, filename string) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s */,", refID, filename)
}

// PhaseFileLine renders a membership line for a build phase's files list.
func PhaseFileLine(buildID, filename, phase string) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s in %s */,", buildID, filename, phase)
}
