// Package execshell provides structured helpers for invoking the git CLI.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions vitals uses to read
// repository state in a testable manner.
package execshell
