// Package workspace discovers git repositories under configured roots,
// computes file metrics for the surrounding workspace tree, and collects
// per-repository facts into assessment records.
package workspace
