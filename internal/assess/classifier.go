package assess

// ClassifyRepository labels a repository record as dirty, unpushed, or clean.
//
// Dirtiness wins over unpushed work: a repository with uncommitted changes is
// dirty even when its branch is also ahead of the upstream.
func ClassifyRepository(repositoryRecord RepositoryRecord) RepositoryState {
	if !repositoryRecord.Clean {
		return RepositoryStateDirty
	}
	if repositoryRecord.AheadCount > 0 {
		return RepositoryStateUnpushed
	}
	return RepositoryStateClean
}
