package patch

import (
	"fmt"
	"os"
)

// planTemplate is the starter plan written by init. The commented
// examples double as the format reference, so keep them parseable.
const planTemplate = `# pbxpatch plan
#
# "pbxpatch apply" adds every file below to the project manifest and
# records the generated identifiers under "applied:". "pbxpatch revert"
# removes them again. Leave the applied section alone; it is the only
# record of which manifest lines belong to this tool.
project: %s
group: %s
phase: %s

# Each entry is a bare filename, or a mapping when you need overrides:
#   - NetworkClient.swift
#   - name: Legacy.m
#     path: Vendor/Legacy/Legacy.m
#     compile: false
files: []

# Uncomment to map extensions the built-in table does not know:
# types:
#   .gyb:
#     tag: sourcecode.swift.gyb
#     compile: false
`

// WritePlanTemplate writes a starter plan to path. Existing files are
// overwritten; the caller decides whether that is allowed.
func WritePlanTemplate(path, project, group, phase string) error {
	content := fmt.Sprintf(planTemplate, project, group, phase)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing plan template: %w", err)
	}
	return nil
}
