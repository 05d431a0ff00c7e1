package adapters

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"fastdev/internal/ports"
)

// GitRepoAdapter inspects repository state through go-git instead of
// scraping `git status` output.
type GitRepoAdapter struct{}

func NewGitRepoAdapter() GitRepoAdapter {
	return GitRepoAdapter{}
}

func (a GitRepoAdapter) WorktreeClean(root string) (bool, error) {
	repo, err := openRepo(root)
	if err != nil {
		return false, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open worktree").
			WithCause(err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read worktree status").
			WithCause(err)
	}
	return status.IsClean(), nil
}

func (a GitRepoAdapter) HasUnpushedCommits(root string) (bool, error) {
	repo, err := openRepo(root)
	if err != nil {
		return false, err
	}
	head, err := repo.Head()
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read HEAD").
			WithCause(err)
	}
	remoteName := plumbing.NewRemoteReferenceName("origin", head.Name().Short())
	remoteRef, err := repo.Reference(remoteName, true)
	if err != nil {
		// No upstream tracked yet, a push is needed regardless.
		return true, nil
	}
	return head.Hash() != remoteRef.Hash(), nil
}

func (a GitRepoAdapter) TagExists(root string, name string) (bool, error) {
	repo, err := openRepo(root)
	if err != nil {
		return false, err
	}
	_, err = repo.Tag(name)
	if err != nil {
		if errors.Is(err, git.ErrTagNotFound) {
			return false, nil
		}
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to look up tag").
			WithCause(err)
	}
	return true, nil
}

func openRepo(root string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("not a git repository").
			WithCause(err)
	}
	return repo, nil
}

var _ ports.GitPort = GitRepoAdapter{}
