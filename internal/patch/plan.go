// Package patch orchestrates manifest patching: it reads the plan from
// pbxpatch.yml, applies and reverts entries through the pbx primitives,
// and tracks generated identifiers so later runs can skip or undo them.
package patch

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"pbxpatch/internal/pbx"
)

// DefaultPlanFile is the plan filename looked up in the working
// directory when --config is not given.
const DefaultPlanFile = "pbxpatch.yml"

// DefaultPhase is the build phase entries join when the plan names none.
const DefaultPhase = "Sources"

// Plan is the pbxpatch.yml document: which manifest to patch, where the
// entries go, and what earlier runs already applied.
type Plan struct {
	Project string                  `yaml:"project"`
	Group   string                  `yaml:"group"`
	Phase   string                  `yaml:"phase,omitempty"`
	Prefix  string                  `yaml:"prefix,omitempty"`
	Files   []FileSpec              `yaml:"files"`
	Types   map[string]pbx.FileType `yaml:"types,omitempty"`
	Applied map[string]AppliedEntry `yaml:"applied,omitempty"`

	path string
}

// FileSpec names one file to add. In YAML it is either a bare filename
// or a mapping with overrides:
//
//	files:
//	  - NetworkClient.swift
//	  - name: Legacy.m
//	    path: Vendor/Legacy.m
//	    compile: false
type FileSpec struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path,omitempty"`
	Compile *bool  `yaml:"compile,omitempty"`
}

// UnmarshalYAML accepts the scalar shorthand alongside the full mapping.
func (f *FileSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*f = FileSpec{Name: name}
		return nil
	}

	type rawFileSpec FileSpec
	var raw rawFileSpec
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*f = FileSpec(raw)
	return nil
}

// AppliedEntry records the identifiers one run generated for an entry,
// keyed by filename under Plan.Applied. Revert resolves entries to
// identifiers through this ledger instead of re-deriving anything from
// the manifest.
type AppliedEntry struct {
	FileRef   string `yaml:"file_ref"`
	BuildFile string `yaml:"build_file,omitempty"`
	Path      string `yaml:"path"`
	Compiled  bool   `yaml:"compiled"`
}

// Identifiers returns the entry's generated identifiers.
func (e AppliedEntry) Identifiers() []string {
	ids := []string{e.FileRef}
	if e.BuildFile != "" {
		ids = append(ids, e.BuildFile)
	}
	return ids
}

// LoadPlan reads a plan from disk.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if p.Applied == nil {
		p.Applied = make(map[string]AppliedEntry)
	}
	p.path = path
	return &p, nil
}

// Path returns where the plan was loaded from.
func (p *Plan) Path() string { return p.path }

// Save writes the plan back to where it was loaded from.
func (p *Plan) Save() error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	return nil
}

// PhaseName returns the configured build phase, defaulting to Sources.
func (p *Plan) PhaseName() string {
	if p.Phase == "" {
		return DefaultPhase
	}
	return p.Phase
}

// PathPrefix returns the directory prefix for manifest paths, defaulting
// to the group name.
func (p *Plan) PathPrefix() string {
	if p.Prefix == "" {
		return p.Group
	}
	return p.Prefix
}

// ManifestPath returns the path the manifest will record for f.
func (p *Plan) ManifestPath(f FileSpec) string {
	if f.Path != "" {
		return f.Path
	}
	if prefix := p.PathPrefix(); prefix != "" {
		return prefix + "/" + f.Name
	}
	return f.Name
}

// SetApplied stages an entry in the applied ledger. The caller saves.
func (p *Plan) SetApplied(name string, e AppliedEntry) {
	if p.Applied == nil {
		p.Applied = make(map[string]AppliedEntry)
	}
	p.Applied[name] = e
}

// DropApplied removes entries from the applied ledger. The caller saves.
func (p *Plan) DropApplied(names ...string) {
	for _, n := range names {
		delete(p.Applied, n)
	}
}

// AppliedNames returns the tracked entry names, sorted.
func (p *Plan) AppliedNames() []string {
	names := make([]string, 0, len(p.Applied))
	for n := range p.Applied {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ValidationError describes one problem with a plan.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass so the user
// can fix the plan in one edit.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "invalid plan"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "found %d problems:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Validate checks the plan's own consistency. It does not touch the
// manifest.
func (p *Plan) Validate() error {
	var errs ValidationErrors

	if p.Project == "" {
		errs = append(errs, ValidationError{"project", "project path is required"})
	}
	if p.Group == "" {
		errs = append(errs, ValidationError{"group", "target group is required"})
	}
	if len(p.Files) == 0 {
		errs = append(errs, ValidationError{"files", "at least one file is required"})
	}

	seen := make(map[string]bool)
	for i, f := range p.Files {
		field := fmt.Sprintf("files[%d]", i)
		if f.Name == "" {
			errs = append(errs, ValidationError{field, "name is required"})
			continue
		}
		if strings.ContainsAny(f.Name, "/\\") {
			errs = append(errs, ValidationError{field, fmt.Sprintf("%s: name must be a bare filename; use path for the location", f.Name)})
		}
		if seen[f.Name] {
			errs = append(errs, ValidationError{field, fmt.Sprintf("%s is listed twice", f.Name)})
		}
		seen[f.Name] = true
	}

	for ext := range p.Types {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, ValidationError{"types", fmt.Sprintf("extension %q must start with a dot", ext)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
