package workspace

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const gitMetadataDirectoryNameConstant = ".git"

// DiscoveryOptions bounds the repository walk.
//
// MaxDepth limits how many directory levels below each root a repository may
// sit; zero means unlimited. ExcludePatterns are matched against directory
// base names with filepath.Match and against root-relative paths as
// substrings; matching directories are skipped entirely.
type DiscoveryOptions struct {
	MaxDepth        int
	ExcludePatterns []string
}

// FilesystemRepositoryDiscoverer locates git repositories on disk.
type FilesystemRepositoryDiscoverer struct {
	options DiscoveryOptions
}

// NewFilesystemRepositoryDiscoverer constructs a repository discoverer backed by filepath.WalkDir.
func NewFilesystemRepositoryDiscoverer(options DiscoveryOptions) *FilesystemRepositoryDiscoverer {
	return &FilesystemRepositoryDiscoverer{options: options}
}

// DiscoverRepositories walks the provided roots and returns directories containing a .git entry.
// Roots that do not exist are skipped. The result is deduplicated and sorted.
func (discoverer *FilesystemRepositoryDiscoverer) DiscoverRepositories(roots []string) ([]string, error) {
	seen := make(map[string]struct{})
	var repositories []string

	for _, root := range roots {
		walkError := filepath.WalkDir(root, func(path string, directoryEntry fs.DirEntry, walkError error) error {
			if walkError != nil {
				return nil
			}

			entryDepth := relativeEntryDepth(root, path)

			if directoryEntry.IsDir() && entryDepth > 0 && matchesExcludePattern(discoverer.options.ExcludePatterns, root, path, directoryEntry.Name()) {
				return fs.SkipDir
			}

			if directoryEntry.Name() != gitMetadataDirectoryNameConstant {
				if directoryEntry.IsDir() && discoverer.options.MaxDepth > 0 && entryDepth > discoverer.options.MaxDepth {
					return fs.SkipDir
				}
				return nil
			}

			repositoryDepth := entryDepth - 1
			if discoverer.options.MaxDepth > 0 && repositoryDepth > discoverer.options.MaxDepth {
				if directoryEntry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			repositoryPath := filepath.Dir(path)
			if _, alreadySeen := seen[repositoryPath]; alreadySeen {
				if directoryEntry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			seen[repositoryPath] = struct{}{}
			repositories = append(repositories, repositoryPath)

			if directoryEntry.IsDir() {
				return fs.SkipDir
			}
			return nil
		})
		if walkError != nil {
			return nil, walkError
		}
	}

	sort.Strings(repositories)
	return repositories, nil
}

// matchesExcludePattern reports whether a directory is excluded by pattern,
// either through a filepath.Match on its base name or a substring match on
// its root-relative path.
func matchesExcludePattern(excludePatterns []string, root string, path string, baseName string) bool {
	if len(excludePatterns) == 0 {
		return false
	}

	relativePath, relativeError := filepath.Rel(root, path)
	if relativeError != nil {
		relativePath = path
	}

	for _, pattern := range excludePatterns {
		if matched, matchError := filepath.Match(pattern, baseName); matchError == nil && matched {
			return true
		}
		if strings.Contains(relativePath, pattern) {
			return true
		}
	}
	return false
}

// relativeEntryDepth reports how many levels below root the entry sits; the root itself is depth zero.
func relativeEntryDepth(root string, path string) int {
	relativePath, relativeError := filepath.Rel(root, path)
	if relativeError != nil || relativePath == "." {
		return 0
	}
	return strings.Count(relativePath, string(filepath.Separator)) + 1
}
