package patch

import (
	"strings"

	"pbxpatch/internal/pbx"
)

// EntryCheck is the manifest's agreement with one tracked entry.
type EntryCheck struct {
	Name    string
	Entry   AppliedEntry
	RefOK   bool // file reference record present
	GroupOK bool // group membership line present
	BuildOK bool // build file record present and pointing at the reference
	PhaseOK bool // build phase membership line present
}

// OK reports whether every expected record is in place.
func (c EntryCheck) OK() bool {
	if !c.RefOK || !c.GroupOK {
		return false
	}
	if c.Entry.BuildFile != "" && (!c.BuildOK || !c.PhaseOK) {
		return false
	}
	return true
}

// Missing names the records that were expected but not found.
func (c EntryCheck) Missing() []string {
	var out []string
	if !c.RefOK {
		out = append(out, "file reference "+c.Entry.FileRef)
	}
	if !c.GroupOK {
		out = append(out, "group membership")
	}
	if c.Entry.BuildFile != "" {
		if !c.BuildOK {
			out = append(out, "build file "+c.Entry.BuildFile)
		}
		if !c.PhaseOK {
			out = append(out, "build phase membership")
		}
	}
	return out
}

// VerifyResult is the integrity report for every tracked entry.
type VerifyResult struct {
	Checks []EntryCheck
}

// Clean reports whether every tracked entry verified.
func (r *VerifyResult) Clean() bool {
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}
	return true
}

// Verify checks every ledger entry against the manifest. A healthy
// entry has its file reference record, its group membership line, and
// for compiled entries a build file record naming the reference plus a
// build phase membership line.
func (p *Patcher) Verify() (*VerifyResult, error) {
	doc, err := pbx.Load(p.plan.Project)
	if err != nil {
		return nil, err
	}
	text := doc.Text()

	refSec, err := pbx.FindSection(text, "PBXFileReference")
	if err != nil {
		return nil, err
	}
	groupSec, err := pbx.FindGroupChildren(text, p.plan.Group)
	if err != nil {
		return nil, err
	}

	// The build regions are located on first use so reference-only
	// ledgers verify against manifests that lack them.
	phase := p.plan.PhaseName()
	var buildInner, phaseInner string
	buildLocated := false

	res := &VerifyResult{}
	for _, name := range p.plan.AppliedNames() {
		e := p.plan.Applied[name]
		check := EntryCheck{Name: name, Entry: e}

		check.RefOK = strings.Contains(refSec.Inner(text), e.FileRef+" /* "+name+" */")
		check.GroupOK = strings.Contains(groupSec.Inner(text), pbx.GroupChildLine(e.FileRef, name))

		if e.BuildFile != "" {
			if !buildLocated {
				buildSec, err := pbx.FindSection(text, "PBXBuildFile")
				if err != nil {
					return nil, err
				}
				phaseSec, err := pbx.FindPhaseFiles(text, phase)
				if err != nil {
					return nil, err
				}
				buildInner = buildSec.Inner(text)
				phaseInner = phaseSec.Inner(text)
				buildLocated = true
			}
			check.BuildOK = strings.Contains(buildInner, pbx.BuildFileRecord(e.BuildFile, e.FileRef, name, phase))
			check.PhaseOK = strings.Contains(phaseInner, pbx.PhaseFileLine(e.BuildFile, name, phase))
		}

		res.Checks = append(res.Checks, check)
	}
	return res, nil
}
