package models

import "fmt"

// Category is the cohesion class assigned to a group of changes
type Category int

const (
	CategoryFeature Category = iota
	CategoryFix
	CategoryRefactor
	CategoryDocs
	CategoryConfig
	CategoryTest
	CategoryStyle
)

// AllCategories lists every category once, in declaration order
var AllCategories = []Category{
	CategoryFeature,
	CategoryFix,
	CategoryRefactor,
	CategoryDocs,
	CategoryConfig,
	CategoryTest,
	CategoryStyle,
}

// ClassifyPreference is the tie-break order when a record matches several
// categories: the most structurally distinct category wins.
var ClassifyPreference = []Category{
	CategoryConfig,
	CategoryTest,
	CategoryDocs,
	CategoryStyle,
	CategoryRefactor,
	CategoryFix,
	CategoryFeature,
}

// DefaultCommitOrder is the order groups are committed in: structural changes
// first, cosmetic changes last.
var DefaultCommitOrder = []Category{
	CategoryConfig,
	CategoryRefactor,
	CategoryFeature,
	CategoryFix,
	CategoryTest,
	CategoryDocs,
	CategoryStyle,
}

func (c Category) String() string {
	switch c {
	case CategoryFeature:
		return "feature"
	case CategoryFix:
		return "fix"
	case CategoryRefactor:
		return "refactor"
	case CategoryDocs:
		return "docs"
	case CategoryConfig:
		return "config"
	case CategoryTest:
		return "test"
	case CategoryStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Title returns the display form used in headers and summaries
func (c Category) Title() string {
	switch c {
	case CategoryFeature:
		return "Feature"
	case CategoryFix:
		return "Fix"
	case CategoryRefactor:
		return "Refactor"
	case CategoryDocs:
		return "Docs"
	case CategoryConfig:
		return "Config"
	case CategoryTest:
		return "Test"
	case CategoryStyle:
		return "Style"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a config string back to a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if c.String() == s {
			return c, nil
		}
	}
	return CategoryFeature, fmt.Errorf("unknown category %q", s)
}
