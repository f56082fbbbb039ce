package workspace

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/temirov/vitals/internal/assess"
)

const extensionlessFileBucketConstant = "(none)"

// MetricsCalculator computes workspace-wide file statistics for an assessment run.
type MetricsCalculator struct {
	excludePatterns []string
}

// NewMetricsCalculator constructs a calculator honoring the provided exclusion patterns.
func NewMetricsCalculator(excludePatterns []string) *MetricsCalculator {
	return &MetricsCalculator{excludePatterns: excludePatterns}
}

// CalculateMetrics walks the provided roots counting files by lowercased
// extension, skipping git metadata directories and excluded paths. Files
// without an extension land in a single shared bucket. ProjectCount reflects
// the repositories discovered for the same run, not the walked roots.
func (calculator *MetricsCalculator) CalculateMetrics(roots []string, repositories []string) (assess.WorkspaceMetrics, error) {
	fileCounts := make(map[string]int)

	for _, root := range roots {
		walkError := filepath.WalkDir(root, func(path string, directoryEntry fs.DirEntry, walkError error) error {
			if walkError != nil {
				return nil
			}

			if directoryEntry.IsDir() {
				if directoryEntry.Name() == gitMetadataDirectoryNameConstant {
					return fs.SkipDir
				}
				if relativeEntryDepth(root, path) > 0 && matchesExcludePattern(calculator.excludePatterns, root, path, directoryEntry.Name()) {
					return fs.SkipDir
				}
				return nil
			}

			fileCounts[fileExtensionBucket(directoryEntry.Name())]++
			return nil
		})
		if walkError != nil {
			return assess.WorkspaceMetrics{}, walkError
		}
	}

	return assess.WorkspaceMetrics{FileCounts: fileCounts, ProjectCount: len(repositories)}, nil
}

// fileExtensionBucket maps a file name onto its metrics bucket.
func fileExtensionBucket(fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	if extension == "" {
		return extensionlessFileBucketConstant
	}
	return extension
}
