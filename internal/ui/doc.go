// Package ui renders human-readable console narration for command execution.
//
// The console event logger observes git command lifecycle events and turns
// them into concise progress messages, while detailed telemetry keeps flowing
// through structured loggers.
package ui
