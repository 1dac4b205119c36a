package git

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/aymanbagabas/go-udiff"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Changes returns one ChangeRecord per changed path, worktree versus HEAD,
// including untracked files. Records are sorted by path so two scans of the
// same tree produce identical input for the grouping engine. Read-only.
func (r *Repository) Changes() ([]models.ChangeRecord, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, &RepositoryUnavailableError{Path: r.root, Err: err}
	}

	status, err := wt.Status()
	if err != nil {
		return nil, err
	}

	headTree := r.headTree() // nil on an unborn branch

	var records []models.ChangeRecord
	for path, fs := range status {
		st, ok := changeStatus(fs)
		if !ok {
			continue
		}

		diffText := r.diffFor(path, st, headTree)
		records = append(records, models.NewChangeRecord(path, st, diffText))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	return records, nil
}

// changeStatus maps go-git status codes onto ChangeStatus.
// Staged and unstaged edits are treated alike: the tool re-stages per group.
func changeStatus(fs *gogit.FileStatus) (models.ChangeStatus, bool) {
	if fs.Worktree == gogit.Untracked {
		return models.StatusUntracked, true
	}
	if fs.Staging == gogit.Deleted || fs.Worktree == gogit.Deleted {
		return models.StatusDeleted, true
	}
	if fs.Staging == gogit.Added {
		return models.StatusAdded, true
	}
	if fs.Staging == gogit.Unmodified && fs.Worktree == gogit.Unmodified {
		return models.StatusModified, false
	}
	return models.StatusModified, true
}

// headTree resolves the tree of the HEAD commit, or nil when the repository
// has no commits yet
func (r *Repository) headTree() *object.Tree {
	head, err := r.repo.Head()
	if err != nil {
		return nil
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil
	}
	return tree
}

// diffFor builds the unified diff for a single path. Binary content yields ""
func (r *Repository) diffFor(path string, st models.ChangeStatus, headTree *object.Tree) string {
	oldContent := r.headContent(path, headTree)

	var newContent string
	if st != models.StatusDeleted {
		data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(path)))
		if err != nil {
			return ""
		}
		if bytes.ContainsRune(data, 0) {
			return ""
		}
		newContent = string(data)
	}

	return udiff.Unified("a/"+path, "b/"+path, oldContent, newContent)
}

// headContent returns the HEAD blob content for path, "" if absent or binary
func (r *Repository) headContent(path string, headTree *object.Tree) string {
	if headTree == nil {
		return ""
	}
	file, err := headTree.File(path)
	if err != nil {
		return ""
	}
	if bin, err := file.IsBinary(); err != nil || bin {
		return ""
	}
	content, err := file.Contents()
	if err != nil {
		return ""
	}
	return content
}

// HeadShort returns the abbreviated HEAD commit hash
func (r *Repository) HeadShort() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return "", nil
		}
		return "", err
	}
	return head.Hash().String()[:7], nil
}
