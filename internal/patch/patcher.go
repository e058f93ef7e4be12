package patch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pbxpatch/internal/pbx"
)

var (
	// ErrAlreadyPresent reports a planned file the target group already
	// references outside this tool's ledger. Adding it would duplicate
	// a record the tool cannot safely revert.
	ErrAlreadyPresent = errors.New("file already present in group")

	// ErrUntracked reports a revert target with no ledger entry.
	ErrUntracked = errors.New("entry not tracked")

	// ErrStateDrift reports a tracked entry with only some of its
	// records left in the manifest.
	ErrStateDrift = errors.New("tracked records partially missing")
)

// Patcher applies and reverts plan entries against one manifest.
type Patcher struct {
	plan *Plan
	gen  *pbx.Generator
}

// NewPatcher creates a Patcher for plan.
func NewPatcher(plan *Plan) *Patcher {
	return &Patcher{plan: plan, gen: &pbx.Generator{}}
}

// EntryResult reports what Apply did (or would do) for one entry.
type EntryResult struct {
	Name      string
	Path      string
	Compiled  bool
	Skipped   bool // already applied and intact
	FileRef   string
	BuildFile string
}

// ApplyResult reports one apply pass. Before and After are manifest
// snapshots for diffing; After equals Before when nothing changed.
type ApplyResult struct {
	Entries []EntryResult
	Before  string
	After   string
	Changed bool
}

// Added counts the entries this pass added (or would add).
func (r *ApplyResult) Added() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Skipped {
			n++
		}
	}
	return n
}

// RevertResult reports one revert pass.
type RevertResult struct {
	Names        []string
	IDs          []string
	LinesRemoved int
	Before       string
	After        string
	Changed      bool
}

// Apply adds every plan entry to the manifest. The pass has two phases:
// everything is classified and every required region located while the
// text is untouched, then records are spliced entry by entry on an
// in-memory copy. Only a fully successful pass reaches disk, manifest
// first, ledger second. With dryRun nothing reaches disk.
//
// Entries whose recorded identifiers are all still in the manifest are
// skipped; entries whose records are entirely gone are re-added with
// fresh identifiers. Anything in between is drift and fails the run,
// as does a name the group references without a ledger identifier
// backing it (ErrAlreadyPresent).
func (p *Patcher) Apply(ctx context.Context, dryRun bool) (*ApplyResult, error) {
	if err := p.plan.Validate(); err != nil {
		return nil, err
	}

	doc, err := pbx.Load(p.plan.Project)
	if err != nil {
		return nil, err
	}
	text := doc.Text()
	res := &ApplyResult{Before: text, After: text}

	groupSec, err := pbx.FindGroupChildren(text, p.plan.Group)
	if err != nil {
		return nil, err
	}

	type pendingEntry struct {
		idx  int // position in res.Entries
		name string
		path string
		ft   pbx.FileType
	}
	var pending []pendingEntry

	needCompile := false
	for _, f := range p.plan.Files {
		ft, err := pbx.Classify(f.Name, p.plan.Types)
		if err != nil {
			return nil, err
		}
		if f.Compile != nil {
			ft.Compile = *f.Compile
		}

		if tracked, ok := p.plan.Applied[f.Name]; ok {
			present, missing := trackedPresence(text, tracked)
			if missing == 0 {
				res.Entries = append(res.Entries, EntryResult{
					Name:      f.Name,
					Path:      tracked.Path,
					Compiled:  tracked.Compiled,
					Skipped:   true,
					FileRef:   tracked.FileRef,
					BuildFile: tracked.BuildFile,
				})
				continue
			}
			if present > 0 {
				return nil, fmt.Errorf("%s: %w", f.Name, ErrStateDrift)
			}
			// Every record is gone; treat as unapplied and re-add.
		}
		// Holds for re-adds too: a group annotation that none of the
		// ledger identifiers account for is a record outside the ledger.
		if strings.Contains(groupSec.Inner(text), "/* "+f.Name+" */") {
			return nil, fmt.Errorf("%s: %w", f.Name, ErrAlreadyPresent)
		}

		if ft.Compile {
			needCompile = true
		}
		res.Entries = append(res.Entries, EntryResult{
			Name:     f.Name,
			Path:     p.plan.ManifestPath(f),
			Compiled: ft.Compile,
		})
		pending = append(pending, pendingEntry{
			idx:  len(res.Entries) - 1,
			name: f.Name,
			path: p.plan.ManifestPath(f),
			ft:   ft,
		})
	}

	if len(pending) == 0 {
		return res, nil
	}

	// Every region the pass will touch must exist before any text moves.
	if _, err := pbx.FindSection(text, "PBXFileReference"); err != nil {
		return nil, err
	}
	if needCompile {
		if _, err := pbx.FindSection(text, "PBXBuildFile"); err != nil {
			return nil, err
		}
		if _, err := pbx.FindPhaseFiles(text, p.plan.PhaseName()); err != nil {
			return nil, err
		}
	}

	working := text
	staged := make(map[string]AppliedEntry, len(pending))
	for _, pe := range pending {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		updated, entry, err := p.addEntry(working, pe.name, pe.path, pe.ft)
		if err != nil {
			return nil, fmt.Errorf("adding %s: %w", pe.name, err)
		}
		working = updated
		staged[pe.name] = entry
		res.Entries[pe.idx].FileRef = entry.FileRef
		res.Entries[pe.idx].BuildFile = entry.BuildFile
	}

	res.After = working
	res.Changed = working != res.Before
	if dryRun || !res.Changed {
		return res, nil
	}

	doc.SetText(working)
	if err := doc.Save(); err != nil {
		return nil, err
	}
	for name, entry := range staged {
		p.plan.SetApplied(name, entry)
	}
	if err := p.plan.Save(); err != nil {
		return nil, fmt.Errorf("manifest updated but ledger not saved: %w", err)
	}
	return res, nil
}

// addEntry splices one file's records into text. Each region is located
// immediately before its splice so offsets stay valid as the text grows.
// The returned text replaces the working copy only on full success.
func (p *Patcher) addEntry(text, name, path string, ft pbx.FileType) (string, AppliedEntry, error) {
	refID, err := p.gen.Next(text)
	if err != nil {
		return "", AppliedEntry{}, err
	}
	entry := AppliedEntry{FileRef: refID, Path: path, Compiled: ft.Compile}

	var buildID string
	if ft.Compile {
		buildID, err = p.gen.Next(text)
		if err != nil {
			return "", AppliedEntry{}, err
		}
		entry.BuildFile = buildID
	}

	phase := p.plan.PhaseName()
	splices := []struct {
		want   bool
		locate func(string) (pbx.Section, error)
		record string
	}{
		{
			true,
			func(s string) (pbx.Section, error) { return pbx.FindSection(s, "PBXFileReference") },
			pbx.FileReferenceRecord(refID, name, path, ft.Tag),
		},
		{
			ft.Compile,
			func(s string) (pbx.Section, error) { return pbx.FindSection(s, "PBXBuildFile") },
			pbx.BuildFileRecord(buildID, refID, name, phase),
		},
		{
			true,
			func(s string) (pbx.Section, error) { return pbx.FindGroupChildren(s, p.plan.Group) },
			pbx.GroupChildLine(refID, name),
		},
		{
			ft.Compile,
			func(s string) (pbx.Section, error) { return pbx.FindPhaseFiles(s, phase) },
			pbx.PhaseFileLine(buildID, name, phase),
		},
	}

	scratch := text
	for _, sp := range splices {
		if !sp.want {
			continue
		}
		sec, err := sp.locate(scratch)
		if err != nil {
			return "", AppliedEntry{}, err
		}
		scratch, _ = pbx.InsertRecord(scratch, sec, sp.record)
	}
	return scratch, entry, nil
}

// Revert removes tracked entries (by name) and raw identifiers from the
// manifest. Unknown names and malformed identifiers fail the run before
// any text changes. Reverted names leave the ledger only after the
// manifest is saved.
func (p *Patcher) Revert(ctx context.Context, names, rawIDs []string, dryRun bool) (*RevertResult, error) {
	res := &RevertResult{Names: names}

	var ids []string
	for _, name := range names {
		entry, ok := p.plan.Applied[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrUntracked)
		}
		ids = append(ids, entry.Identifiers()...)
	}
	for _, id := range rawIDs {
		if !pbx.IsIdentifier(id) {
			return nil, fmt.Errorf("%q is not a %d-digit hex identifier", id, pbx.IdentifierLen)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return res, nil
	}
	res.IDs = ids

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := pbx.Load(p.plan.Project)
	if err != nil {
		return nil, err
	}
	res.Before = doc.Text()

	after, removed := pbx.RemoveIdentifiers(doc.Text(), ids)
	res.After = after
	res.LinesRemoved = removed
	res.Changed = removed > 0

	if dryRun {
		return res, nil
	}

	if res.Changed {
		doc.SetText(after)
		if err := doc.Save(); err != nil {
			return nil, err
		}
	}
	if len(names) > 0 {
		p.plan.DropApplied(names...)
		if err := p.plan.Save(); err != nil {
			return nil, fmt.Errorf("saving ledger: %w", err)
		}
	}
	return res, nil
}

// trackedPresence counts how many of an entry's identifiers are present
// in and missing from text.
func trackedPresence(text string, e AppliedEntry) (present, missing int) {
	for _, id := range e.Identifiers() {
		if pbx.ContainsIdentifier(text, id) {
			present++
		} else {
			missing++
		}
	}
	return present, missing
}
