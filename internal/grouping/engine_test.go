package grouping

import (
	"testing"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rec  models.ChangeRecord
		want models.Category
	}{
		{
			name: "new source file is a feature",
			rec:  models.NewChangeRecord("internal/auth/login.go", models.StatusAdded, "+func Login() {}"),
			want: models.CategoryFeature,
		},
		{
			name: "untracked source file is a feature",
			rec:  models.NewChangeRecord("pkg/token.go", models.StatusUntracked, "+package pkg"),
			want: models.CategoryFeature,
		},
		{
			name: "modified source file is a fix",
			rec:  models.NewChangeRecord("internal/auth/login.go", models.StatusModified, "-return nil\n+return err"),
			want: models.CategoryFix,
		},
		{
			name: "deleted file is a refactor",
			rec:  models.NewChangeRecord("internal/legacy/old.go", models.StatusDeleted, "-package legacy"),
			want: models.CategoryRefactor,
		},
		{
			name: "pure removal reads as refactor",
			rec:  models.NewChangeRecord("internal/auth/login.go", models.StatusModified, "-unused()\n-alsoUnused()"),
			want: models.CategoryRefactor,
		},
		{
			name: "markdown is docs",
			rec:  models.NewChangeRecord("README.md", models.StatusModified, "-old\n+new"),
			want: models.CategoryDocs,
		},
		{
			name: "LICENSE without extension is docs",
			rec:  models.NewChangeRecord("LICENSE", models.StatusModified, "-2025\n+2026"),
			want: models.CategoryDocs,
		},
		{
			name: "docs directory is docs",
			rec:  models.NewChangeRecord("docs/guide.txt", models.StatusAdded, "+intro"),
			want: models.CategoryDocs,
		},
		{
			name: "go test file is a test",
			rec:  models.NewChangeRecord("internal/auth/login_test.go", models.StatusAdded, "+func TestLogin(t *testing.T) {}"),
			want: models.CategoryTest,
		},
		{
			name: "js spec file is a test",
			rec:  models.NewChangeRecord("src/login.spec.ts", models.StatusModified, "-a\n+b"),
			want: models.CategoryTest,
		},
		{
			name: "testdata fixture is a test",
			rec:  models.NewChangeRecord("internal/auth/testdata/token.txt", models.StatusAdded, "+fixture"),
			want: models.CategoryTest,
		},
		{
			name: "dotfile is config",
			rec:  models.NewChangeRecord(".gitignore", models.StatusModified, "+dist/"),
			want: models.CategoryConfig,
		},
		{
			name: "yaml is config",
			rec:  models.NewChangeRecord("deploy/app.yaml", models.StatusModified, "-replicas: 1\n+replicas: 2"),
			want: models.CategoryConfig,
		},
		{
			name: "Makefile is config",
			rec:  models.NewChangeRecord("Makefile", models.StatusModified, "+lint:"),
			want: models.CategoryConfig,
		},
		{
			name: "whitespace only change is style",
			rec:  models.NewChangeRecord("internal/auth/login.go", models.StatusModified, "-func Login()  {\n+func Login() {"),
			want: models.CategoryStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rec))
		})
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// A workflow file matches both the test and config signals; the
	// preference order resolves it to config.
	rec := models.NewChangeRecord(".github/workflows/test.yml", models.StatusModified, "-a\n+b")
	assert.Equal(t, models.CategoryConfig, Classify(rec))

	// A test file under docs/ resolves to test over docs.
	rec = models.NewChangeRecord("docs/examples/demo_test.go", models.StatusAdded, "+func TestDemo(t *testing.T) {}")
	assert.Equal(t, models.CategoryTest, Classify(rec))

	// A whitespace-only change to a markdown file resolves to docs over style.
	rec = models.NewChangeRecord("guide.md", models.StatusModified, "-text  \n+text")
	assert.Equal(t, models.CategoryDocs, Classify(rec))
}

func TestClassifyWhitespaceOnlyRequiresModified(t *testing.T) {
	// An added file whose diff is all additions is never style
	rec := models.NewChangeRecord("main.go", models.StatusAdded, "+package main")
	assert.Equal(t, models.CategoryFeature, Classify(rec))
}

func TestBuildGroupsPartition(t *testing.T) {
	records := []models.ChangeRecord{
		models.NewChangeRecord("internal/auth/login.go", models.StatusAdded, "+func Login() {}"),
		models.NewChangeRecord("internal/auth/token.go", models.StatusAdded, "+func Token() {}"),
		models.NewChangeRecord("internal/auth/login_test.go", models.StatusAdded, "+func TestLogin(t *testing.T) {}"),
		models.NewChangeRecord("README.md", models.StatusModified, "-old\n+new"),
		models.NewChangeRecord(".github/workflows/ci.yml", models.StatusModified, "-a\n+b"),
	}

	groups := BuildGroups(records)

	// Every record lands in exactly one group
	total := 0
	seen := make(map[string]int)
	for _, g := range groups {
		total += len(g.Members)
		for _, m := range g.Members {
			seen[m.Path]++
		}
	}
	assert.Equal(t, len(records), total)
	for path, count := range seen {
		assert.Equal(t, 1, count, "path %s appears in %d groups", path, count)
	}

	// At most one group per category
	byCat := make(map[models.Category]bool)
	for _, g := range groups {
		assert.False(t, byCat[g.Category], "category %s appears twice", g.Category)
		byCat[g.Category] = true
	}
}

func TestBuildGroupsDeterministic(t *testing.T) {
	records := []models.ChangeRecord{
		models.NewChangeRecord("a.go", models.StatusAdded, "+a"),
		models.NewChangeRecord("b.md", models.StatusModified, "-x\n+y"),
		models.NewChangeRecord("c_test.go", models.StatusAdded, "+c"),
	}

	first := BuildGroups(records)
	second := BuildGroups(records)
	require.Equal(t, first, second)
}

func TestBuildGroupsEmpty(t *testing.T) {
	assert.Empty(t, BuildGroups(nil))
}

func TestBuildGroupsSummary(t *testing.T) {
	records := []models.ChangeRecord{
		models.NewChangeRecord("internal/auth/login.go", models.StatusAdded, "+a"),
		models.NewChangeRecord("internal/auth/token.go", models.StatusAdded, "+b"),
	}

	groups := BuildGroups(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "internal/auth", groups[0].Summary)
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"single nested file", []string{"internal/auth/login.go"}, "internal/auth"},
		{"shared directory", []string{"internal/auth/a.go", "internal/auth/b.go"}, "internal/auth"},
		{"partial overlap", []string{"internal/auth/a.go", "internal/plan/b.go"}, "internal"},
		{"no overlap", []string{"internal/a.go", "cmd/b.go"}, ""},
		{"root level file", []string{"main.go", "internal/a.go"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var members []models.ChangeRecord
			for _, p := range tt.paths {
				members = append(members, models.NewChangeRecord(p, models.StatusModified, ""))
			}
			assert.Equal(t, tt.want, CommonPrefix(members))
		})
	}
}
