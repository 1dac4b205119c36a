// Package grouping partitions filtered change records into cohesive groups,
// one per category. Classification uses fixed path and diff heuristics with a
// documented tie-break order, so identical input always yields the same
// partition.
package grouping

import (
	"path"
	"strings"

	"github.com/wahlandcase/attuned.commitsort/internal/models"
)

// BuildGroups partitions records into at most one group per category.
// Every record lands in exactly one group; members keep their input order.
func BuildGroups(records []models.ChangeRecord) []models.ChangeGroup {
	byCategory := make(map[models.Category][]models.ChangeRecord)
	for _, rec := range records {
		cat := Classify(rec)
		byCategory[cat] = append(byCategory[cat], rec)
	}

	var groups []models.ChangeGroup
	for _, cat := range models.AllCategories {
		members := byCategory[cat]
		if len(members) == 0 {
			continue
		}
		groups = append(groups, models.ChangeGroup{
			Category: cat,
			Members:  members,
			Summary:  CommonPrefix(members),
		})
	}
	return groups
}

// Classify assigns a single category to a record. When several categories
// match, the most structurally distinct one wins: Config > Test > Docs >
// Style > Refactor > Fix > Feature.
func Classify(rec models.ChangeRecord) models.Category {
	matched := candidates(rec)
	for _, cat := range models.ClassifyPreference {
		if matched[cat] {
			return cat
		}
	}
	// Unreachable: candidates always includes a status-derived category
	return models.CategoryFeature
}

// candidates collects every category whose signals the record matches
func candidates(rec models.ChangeRecord) map[models.Category]bool {
	matched := make(map[models.Category]bool)

	if isConfigPath(rec.Path) {
		matched[models.CategoryConfig] = true
	}
	if isTestPath(rec.Path) {
		matched[models.CategoryTest] = true
	}
	if isDocsPath(rec.Path) {
		matched[models.CategoryDocs] = true
	}
	if rec.Status == models.StatusModified && isWhitespaceOnly(rec.DiffText) {
		matched[models.CategoryStyle] = true
	}

	// Status-derived fallback so classification is total
	switch rec.Status {
	case models.StatusAdded, models.StatusUntracked:
		matched[models.CategoryFeature] = true
	case models.StatusDeleted:
		matched[models.CategoryRefactor] = true
	case models.StatusModified:
		added, removed := countDiffLines(rec.DiffText)
		if removed > 0 && added == 0 {
			// Pure code removal reads as restructuring, not a fix
			matched[models.CategoryRefactor] = true
		} else {
			matched[models.CategoryFix] = true
		}
	}

	return matched
}

func isDocsPath(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".rst", ".adoc":
		return true
	}

	base := strings.ToUpper(path.Base(p))
	for _, name := range []string{"README", "LICENSE", "CHANGELOG", "CONTRIBUTING", "NOTICE", "AUTHORS"} {
		if base == name || strings.HasPrefix(base, name+".") {
			return true
		}
	}

	return hasDirComponent(p, "docs", "doc")
}

func isTestPath(p string) bool {
	base := strings.ToLower(path.Base(p))
	if strings.Contains(base, "_test.") || strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") {
		return true
	}
	return hasDirComponent(p, "test", "tests", "__tests__", "testdata", "spec")
}

func isConfigPath(p string) bool {
	base := path.Base(p)
	if strings.HasPrefix(base, ".") {
		return true
	}

	switch base {
	case "Makefile", "Dockerfile", "go.mod", "go.sum", "Gemfile", "Rakefile", "Procfile":
		return true
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".toml", ".yaml", ".yml", ".json", ".ini", ".cfg", ".conf", ".lock":
		return true
	}

	// Anything under a dot-directory (.github, .circleci) is tool configuration
	for _, comp := range strings.Split(path.Dir(p), "/") {
		if strings.HasPrefix(comp, ".") && comp != "." && comp != ".." {
			return true
		}
	}

	return false
}

func hasDirComponent(p string, names ...string) bool {
	for _, comp := range strings.Split(path.Dir(p), "/") {
		lower := strings.ToLower(comp)
		for _, name := range names {
			if lower == name {
				return true
			}
		}
	}
	return false
}

// isWhitespaceOnly reports whether the diff changes nothing but whitespace
func isWhitespaceOnly(diffText string) bool {
	added, removed := diffBodies(diffText)
	if added == "" && removed == "" {
		return false
	}
	return stripSpace(added) == stripSpace(removed)
}

// diffBodies concatenates the added and removed line contents of a unified diff
func diffBodies(diffText string) (added, removed string) {
	var addedLines, removedLines []string
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			addedLines = append(addedLines, line[1:])
		case strings.HasPrefix(line, "-"):
			removedLines = append(removedLines, line[1:])
		}
	}
	return strings.Join(addedLines, "\n"), strings.Join(removedLines, "\n")
}

func countDiffLines(diffText string) (added, removed int) {
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// CommonPrefix returns the deepest directory shared by all members,
// "" when the members only share the repository root
func CommonPrefix(members []models.ChangeRecord) string {
	if len(members) == 0 {
		return ""
	}

	prefix := strings.Split(path.Dir(members[0].Path), "/")
	if len(prefix) == 1 && prefix[0] == "." {
		return ""
	}

	for _, m := range members[1:] {
		comps := strings.Split(path.Dir(m.Path), "/")
		if len(comps) == 1 && comps[0] == "." {
			return ""
		}
		prefix = sharedComponents(prefix, comps)
		if len(prefix) == 0 {
			return ""
		}
	}

	return strings.Join(prefix, "/")
}

func sharedComponents(a, b []string) []string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
