package plan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wahlandcase/attuned.commitsort/internal/models"
)

// Commit message limits, overridable through config
const (
	DefaultSubjectLimit = 50
	DefaultBodyWrap     = 72
)

// Subject generates the imperative subject line for a group: capitalized,
// at most limit characters, no trailing period.
func Subject(g models.ChangeGroup, limit int) string {
	if limit <= 0 {
		limit = DefaultSubjectLimit
	}

	// Most specific candidate first, category phrase as the safety net
	var candidates []string
	if len(g.Members) == 1 {
		candidates = append(candidates, categoryVerb(g.Category)+" "+g.Members[0].Path)
	}
	if g.Summary != "" {
		candidates = append(candidates, categoryPhrase(g.Category)+" in "+g.Summary)
	}
	candidates = append(candidates, categoryPhrase(g.Category))

	for _, c := range candidates {
		c = tidySubject(c)
		if len(c) <= limit {
			return c
		}
	}

	return truncate(tidySubject(candidates[len(candidates)-1]), limit)
}

// Body generates the wrapped message body. Groups with a single member get
// no body; the subject already names the file.
func Body(g models.ChangeGroup, wrap int) string {
	if len(g.Members) <= 1 {
		return ""
	}
	if wrap <= 0 {
		wrap = DefaultBodyWrap
	}

	scope := g.Summary
	if scope == "" {
		scope = "the repository"
	}
	intro := fmt.Sprintf("Groups %d %s changes under %s into one commit.",
		len(g.Members), g.Category, scope)

	var lines []string
	lines = append(lines, wrapText(intro, wrap)...)
	lines = append(lines, "")
	for _, m := range g.Members {
		lines = append(lines, fmt.Sprintf("- %s (%s)", m.Path, m.Status))
	}

	return strings.Join(lines, "\n")
}

// Message assembles the full commit message for a group
func Message(g models.ChangeGroup, subjectLimit, bodyWrap int) string {
	subject := Subject(g, subjectLimit)
	body := Body(g, bodyWrap)
	if body == "" {
		return subject
	}
	return subject + "\n\n" + body
}

// categoryVerb is the imperative verb used with a single file path
func categoryVerb(c models.Category) string {
	switch c {
	case models.CategoryFeature:
		return "Add"
	case models.CategoryFix:
		return "Fix"
	case models.CategoryRefactor:
		return "Refactor"
	case models.CategoryStyle:
		return "Reformat"
	default:
		return "Update"
	}
}

// categoryPhrase is the standalone imperative phrase for a category
func categoryPhrase(c models.Category) string {
	switch c {
	case models.CategoryFeature:
		return "Add new functionality"
	case models.CategoryFix:
		return "Fix defects"
	case models.CategoryRefactor:
		return "Refactor code"
	case models.CategoryDocs:
		return "Update documentation"
	case models.CategoryConfig:
		return "Update configuration"
	case models.CategoryTest:
		return "Update tests"
	case models.CategoryStyle:
		return "Clean up formatting"
	default:
		return "Update files"
	}
}

func tidySubject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// wrapText wraps prose at the given column, never splitting a word
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}
