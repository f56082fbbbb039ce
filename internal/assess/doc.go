// Package assess implements the pure workspace health assessment pipeline.
//
// It classifies repository records, aggregates them into GitHealth, evaluates
// pattern and anomaly detection rules, and wraps the result in an
// ObservationNode whose Extract, Duplicate, Extend, and Map operations derive
// further metrics without re-walking the underlying records. Every operation
// in this package is side-effect free; collaborators that touch the
// filesystem or invoke git live elsewhere.
package assess
