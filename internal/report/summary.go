package report

import (
	"github.com/google/uuid"

	"github.com/temirov/vitals/internal/assess"
)

const (
	toolNameConstant    = "vitals"
	toolVersionConstant = "0.1.0"
)

// ToolName reports the tool name stamped into summaries.
func ToolName() string {
	return toolNameConstant
}

// ToolVersion reports the tool version stamped into summaries.
func ToolVersion() string {
	return toolVersionConstant
}

// Summary carries one completed assessment in renderable form.
//
// Patterns, Anomalies, and Repositories alias the slices held by the observed
// node and the collector; renderers treat them as read-only.
type Summary struct {
	RunIdentifier string
	ToolName      string
	ToolVersion   string
	Context       assess.ObservationContext
	Patterns      []assess.Pattern
	Anomalies     []assess.Anomaly
	Trend         assess.HealthTrend
	TotalCommits  int
	Repositories  []assess.RepositoryRecord
}

// NewSummary assembles a renderable summary from an observed assessment node,
// stamping a fresh run identifier and deriving the trend and commit velocity
// from the node.
func NewSummary(observedNode assess.ObservationNode[assess.ObservationContext], repositoryRecords []assess.RepositoryRecord) Summary {
	return Summary{
		RunIdentifier: uuid.New().String(),
		ToolName:      toolNameConstant,
		ToolVersion:   toolVersionConstant,
		Context:       observedNode.Context(),
		Patterns:      observedNode.Patterns(),
		Anomalies:     observedNode.Anomalies(),
		Trend:         assess.Extract(assess.DeriveTrend(observedNode)),
		TotalCommits:  assess.Extract(assess.DeriveVelocity(observedNode)),
		Repositories:  repositoryRecords,
	}
}
