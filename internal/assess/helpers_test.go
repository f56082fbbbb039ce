package assess_test

import (
	"fmt"
	"time"

	"github.com/temirov/vitals/internal/assess"
)

const testWorkspaceIdentifierConstant = "team-platform"

var frozenInstant = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

type frozenClock struct {
	instant time.Time
}

func (clock frozenClock) Now() time.Time {
	return clock.instant
}

// buildRepositoryRecords fabricates totalCount records: the first dirtyCount
// are dirty, the following unpushedCount are clean with commits ahead of the
// upstream, and the remainder are clean and fully pushed.
func buildRepositoryRecords(totalCount int, dirtyCount int, unpushedCount int, commitsPerRepository int) []assess.RepositoryRecord {
	repositoryRecords := make([]assess.RepositoryRecord, 0, totalCount)
	for recordIndex := 0; recordIndex < totalCount; recordIndex++ {
		repositoryRecord := assess.RepositoryRecord{
			Path:        fmt.Sprintf("/workspace/project-%02d", recordIndex),
			Name:        fmt.Sprintf("project-%02d", recordIndex),
			Branch:      "main",
			Clean:       recordIndex >= dirtyCount,
			CommitCount: commitsPerRepository,
			LastCommit:  assess.NewCommitTimestamp(frozenInstant.Add(-time.Duration(recordIndex) * time.Hour)),
			HasUpstream: true,
		}
		if recordIndex >= dirtyCount && recordIndex < dirtyCount+unpushedCount {
			repositoryRecord.AheadCount = 2
		}
		repositoryRecords = append(repositoryRecords, repositoryRecord)
	}
	return repositoryRecords
}

func sampleWorkspaceMetrics(projectCount int) assess.WorkspaceMetrics {
	return assess.WorkspaceMetrics{
		FileCounts:   map[string]int{".go": 120, ".md": 8},
		ProjectCount: projectCount,
	}
}
