// Package gitrepo contains helpers for interrogating Git repositories.
//
// It exposes RepositoryManager for reading worktree cleanliness, branch and
// upstream configuration, commit counts, and commit timestamps through a
// structured git executor.
package gitrepo
