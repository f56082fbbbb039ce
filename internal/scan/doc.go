// Package scan implements the workspace health assessment workflow used by
// the vitals CLI.
//
// It exposes CommandBuilder for wiring the scan Cobra command, Service for
// driving the workflow programmatically, and supporting abstractions for
// repository discovery, git fact collection, workspace metrics, report
// rendering, and file output collaborators.
package scan
