package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("hello\n"), 0644))
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return root, repo
}

func TestWorktreeClean(t *testing.T) {
	root, _ := initTestRepo(t)
	adapter := NewGitRepoAdapter()

	clean, err := adapter.WorktreeClean(root)
	require.NoError(t, err)
	assert.True(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(root, "dirty.txt"), []byte("x\n"), 0644))
	clean, err = adapter.WorktreeClean(root)
	require.NoError(t, err)
	assert.False(t, clean)
}

func TestWorktreeCleanNotARepo(t *testing.T) {
	adapter := NewGitRepoAdapter()
	_, err := adapter.WorktreeClean(t.TempDir())
	require.Error(t, err)
}

func TestHasUnpushedCommitsNoUpstream(t *testing.T) {
	root, _ := initTestRepo(t)
	adapter := NewGitRepoAdapter()

	ahead, err := adapter.HasUnpushedCommits(root)
	require.NoError(t, err)
	assert.True(t, ahead, "no upstream means a push is pending")
}

func TestTagExists(t *testing.T) {
	root, repo := initTestRepo(t)
	adapter := NewGitRepoAdapter()

	exists, err := adapter.TagExists(root, "1.0.0")
	require.NoError(t, err)
	assert.False(t, exists)

	head, err := repo.Head()
	require.NoError(t, err)
	_, err = repo.CreateTag("1.0.0", head.Hash(), nil)
	require.NoError(t, err)

	exists, err = adapter.TagExists(root, "1.0.0")
	require.NoError(t, err)
	assert.True(t, exists)
}
