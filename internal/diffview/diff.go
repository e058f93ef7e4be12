// Package diffview renders manifest changes as unified diffs, inline or
// in a scrollable full-screen viewer.
package diffview

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Options configures diff rendering. The zero value means 3 context
// lines and 4-column tab display.
type Options struct {
	Context  int // unchanged lines shown around each change
	TabWidth int // columns per tab when displaying lines
}

// maxEditDistance bounds the edit script search. Manifest patches touch
// a handful of lines, so hitting this means the inputs are unrelated.
const maxEditDistance = 2000

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

// Unified renders the changes from before to after as a unified diff of
// one file. Identical inputs produce an empty string.
func Unified(path, before, after string, opts *Options) string {
	o := Options{Context: 3, TabWidth: 4}
	if opts != nil {
		if opts.Context > 0 {
			o.Context = opts.Context
		}
		if opts.TabWidth > 0 {
			o.TabWidth = opts.TabWidth
		}
	}

	if before == after {
		return ""
	}

	edits, ok := editScript(splitLines(before), splitLines(after))
	if !ok {
		return fmt.Sprintf("diff suppressed: inputs differ in more than %d lines\n", maxEditDistance)
	}

	hunks := buildHunks(edits, o.Context)
	if len(hunks) == 0 {
		return ""
	}

	width := terminalWidth()

	var buf strings.Builder
	buf.WriteString(headerStyle.Render("--- a/"+path) + "\n")
	buf.WriteString(headerStyle.Render("+++ b/"+path) + "\n")
	for _, h := range hunks {
		writeHunk(&buf, h, o, width)
	}
	return buf.String()
}

type editKind int

const (
	editKeep editKind = iota
	editAdd
	editDel
)

// edit is one line of the edit script. oldNum and newNum are 1-based;
// zero means the line has no home on that side.
type edit struct {
	kind   editKind
	oldNum int
	newNum int
	text   string
}

// editScript computes the shortest edit script between a and b with the
// Myers O(ND) algorithm. Returns ok=false when the script would exceed
// maxEditDistance.
func editScript(a, b []string) ([]edit, bool) {
	n, m := len(a), len(b)

	v := map[int]int{1: 0}
	var trace []map[int]int
	found := false

search:
	for d := 0; d <= n+m; d++ {
		if d > maxEditDistance {
			return nil, false
		}

		snap := make(map[int]int, len(v))
		for k, x := range v {
			snap[k] = x
		}
		trace = append(trace, snap)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1]
			} else {
				x = v[k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[k] = x
			if x >= n && y >= m {
				found = true
				break search
			}
		}
	}
	if !found {
		return nil, false
	}

	// Walk the trace backwards, emitting edits in reverse.
	var rev []edit
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		prev := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && prev[k-1] < prev[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := prev[prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, edit{kind: editKeep, oldNum: x + 1, newNum: y + 1, text: a[x]})
		}
		if d > 0 {
			if x == prevX {
				y--
				rev = append(rev, edit{kind: editAdd, newNum: y + 1, text: b[y]})
			} else {
				x--
				rev = append(rev, edit{kind: editDel, oldNum: x + 1, text: a[x]})
			}
		}
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, true
}

// hunk is a run of edits with its unified-diff header coordinates.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	edits              []edit
}

// buildHunks groups changes into hunks, merging changes separated by at
// most 2*context unchanged lines.
func buildHunks(edits []edit, context int) []hunk {
	var hunks []hunk

	i := 0
	for i < len(edits) {
		if edits[i].kind == editKeep {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}

		last := i
		j := i + 1
		for j < len(edits) {
			if edits[j].kind != editKeep {
				last = j
				j++
				continue
			}
			run := 0
			k := j
			for k < len(edits) && edits[k].kind == editKeep {
				run++
				k++
			}
			if k < len(edits) && run <= context*2 {
				j = k
				continue
			}
			break
		}

		end := last + context + 1
		if end > len(edits) {
			end = len(edits)
		}
		hunks = append(hunks, makeHunk(edits[start:end]))
		i = end
	}
	return hunks
}

func makeHunk(edits []edit) hunk {
	h := hunk{edits: edits}
	for _, e := range edits {
		if e.oldNum > 0 {
			if h.oldStart == 0 {
				h.oldStart = e.oldNum
			}
			h.oldCount++
		}
		if e.newNum > 0 {
			if h.newStart == 0 {
				h.newStart = e.newNum
			}
			h.newCount++
		}
	}
	return h
}

func writeHunk(buf *strings.Builder, h hunk, o Options, width int) {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	buf.WriteString(hunkStyle.Render(header) + "\n")

	for _, e := range h.edits {
		text := truncate(expandTabs(e.text, o.TabWidth), width-2)
		switch e.kind {
		case editAdd:
			buf.WriteString(addedStyle.Render("+"+text) + "\n")
		case editDel:
			buf.WriteString(removedStyle.Render("-"+text) + "\n")
		default:
			buf.WriteString(" " + text + "\n")
		}
	}
}

// splitLines splits s into lines without a trailing empty element for a
// final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var buf strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			buf.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		buf.WriteRune(r)
		col++
	}
	return buf.String()
}

func truncate(s string, max int) string {
	if max <= 0 {
		max = 80
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
