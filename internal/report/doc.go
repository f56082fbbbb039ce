// Package report renders completed workspace assessments as JSON documents,
// Markdown pages, and colorized console summaries.
package report
