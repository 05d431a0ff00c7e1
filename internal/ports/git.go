package ports

// GitPort inspects the state of the project's git repository.
type GitPort interface {
	// WorktreeClean reports whether the working tree at root has no
	// uncommitted changes.
	WorktreeClean(root string) (bool, error)

	// HasUnpushedCommits reports whether the current branch is ahead of
	// its upstream. True also when no upstream is configured, since a
	// push is needed either way.
	HasUnpushedCommits(root string) (bool, error)

	// TagExists reports whether a tag with the given name already exists.
	TagExists(root string, name string) (bool, error)
}
