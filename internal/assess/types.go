package assess

import "time"

// RepositoryState labels the working state of a single repository.
type RepositoryState string

// Repository states produced by the classifier.
const (
	RepositoryStateClean    RepositoryState = "clean"
	RepositoryStateDirty    RepositoryState = "dirty"
	RepositoryStateUnpushed RepositoryState = "unpushed"
)

// PatternTag names a structural pattern detection rule.
type PatternTag string

// Pattern tags emitted by the detection rule set.
const (
	PatternTagHighDirtyRatio PatternTag = "HIGH_DIRTY_RATIO"
)

// AnomalyTag names a statistical anomaly detection rule.
type AnomalyTag string

// Anomaly tags emitted by the detection rule set.
const (
	AnomalyTagHighUnpushedCount AnomalyTag = "HIGH_UNPUSHED_COUNT"
)

// AnomalySeverity grades how strongly an anomaly deviates from the expected range.
type AnomalySeverity string

// Supported anomaly severities.
const (
	AnomalySeverityLow    AnomalySeverity = "LOW"
	AnomalySeverityMedium AnomalySeverity = "MEDIUM"
	AnomalySeverityHigh   AnomalySeverity = "HIGH"
)

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// CommitTimestamp records the most recent commit time of a repository when one is known.
type CommitTimestamp struct {
	Time    time.Time
	Present bool
}

// NewCommitTimestamp wraps a known commit time.
func NewCommitTimestamp(commitTime time.Time) CommitTimestamp {
	return CommitTimestamp{Time: commitTime, Present: true}
}

// RepositoryRecord captures the observed state of one repository for a single assessment run.
type RepositoryRecord struct {
	Path        string
	Name        string
	Branch      string
	Clean       bool
	AheadCount  int
	CommitCount int
	LastCommit  CommitTimestamp
	HasUpstream bool
}

// WorkspaceMetrics aggregates file counts by extension along with the number of discovered projects.
type WorkspaceMetrics struct {
	FileCounts   map[string]int
	ProjectCount int
}

// GitHealth summarizes repository counts and the derived health score for one assessment run.
type GitHealth struct {
	TotalRepositories    int
	CleanRepositories    int
	DirtyRepositories    int
	UnpushedRepositories int
	TotalCommits         int
	HealthScore          float64
}

// Pattern describes a structural condition detected from aggregate ratios.
type Pattern struct {
	Tag            PatternTag
	Significance   float64
	Evidence       string
	Recommendation string
}

// Anomaly describes a statistical deviation detected from raw counts.
type Anomaly struct {
	Tag            AnomalyTag
	Severity       AnomalySeverity
	Deviation      float64
	Description    string
	Recommendation string
}

// ObservationContext is the immutable aggregate snapshot produced once per assessment run.
//
// History is a reserved slot for cross-run snapshots; the assessment pipeline
// always leaves it empty.
type ObservationContext struct {
	WorkspaceIdentifier string
	GeneratedAt         time.Time
	Git                 GitHealth
	Metrics             WorkspaceMetrics
	History             []GitHealth
}

// Config carries the caller-supplied assessment settings.
//
// Only WorkspaceIdentifier is validated by the pipeline; the remaining fields
// configure the scanning collaborators that gather records and metrics.
type Config struct {
	WorkspaceIdentifier string
	ExternalToolRoot    string
	ExternalTeamID      string
	MaxScanDepth        int
	ExcludePatterns     []string
}
