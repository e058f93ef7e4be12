package patch

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverProjects finds project.pbxproj manifests under root, skipping
// hidden directories (DerivedData checkouts, .build trees). Paths are
// returned relative to root, sorted.
func DiscoverProjects(root string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.xcodeproj/project.pbxproj")
	if err != nil {
		return nil, fmt.Errorf("scanning for projects: %w", err)
	}

	var projects []string
	for _, m := range matches {
		if strings.HasPrefix(m, ".") || strings.Contains(m, "/.") {
			continue
		}
		projects = append(projects, m)
	}
	sort.Strings(projects)
	return projects, nil
}
