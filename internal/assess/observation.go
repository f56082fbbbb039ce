package assess

// ObservationNode pairs a derived focus value with the full ObservationContext
// and the patterns and anomalies detected for that context.
//
// The context, pattern slice, and anomaly slice are shared read-only by every
// node derived from the same assessment run; derivations replace only the
// focus. Callers must not mutate the returned slices.
type ObservationNode[FocusValue any] struct {
	focus     FocusValue
	context   ObservationContext
	patterns  []Pattern
	anomalies []Anomaly
}

// NewObservationNode assembles a node from a focus value and its originating context.
func NewObservationNode[FocusValue any](focus FocusValue, observationContext ObservationContext, patterns []Pattern, anomalies []Anomaly) ObservationNode[FocusValue] {
	return ObservationNode[FocusValue]{
		focus:     focus,
		context:   observationContext,
		patterns:  patterns,
		anomalies: anomalies,
	}
}

// Focus returns the node's current focus value.
func (node ObservationNode[FocusValue]) Focus() FocusValue {
	return node.focus
}

// Context returns the aggregate snapshot the focus was derived from.
func (node ObservationNode[FocusValue]) Context() ObservationContext {
	return node.context
}

// Patterns returns the patterns detected for the node's context.
func (node ObservationNode[FocusValue]) Patterns() []Pattern {
	return node.patterns
}

// Anomalies returns the anomalies detected for the node's context.
func (node ObservationNode[FocusValue]) Anomalies() []Anomaly {
	return node.anomalies
}

// Extract returns the node's focus value.
func Extract[FocusValue any](node ObservationNode[FocusValue]) FocusValue {
	return node.focus
}

// Duplicate nests the node as its own focus, keeping context, patterns, and
// anomalies unchanged. Extract applied to the result returns the original
// node.
func Duplicate[FocusValue any](node ObservationNode[FocusValue]) ObservationNode[ObservationNode[FocusValue]] {
	return ObservationNode[ObservationNode[FocusValue]]{
		focus:     node,
		context:   node.context,
		patterns:  node.patterns,
		anomalies: node.anomalies,
	}
}

// Extend derives a new focus by applying derive to the whole node, so the
// derivation can read the context, patterns, and anomalies alongside the
// prior focus. Context, patterns, and anomalies carry over unchanged.
func Extend[FocusValue any, DerivedValue any](node ObservationNode[FocusValue], derive func(ObservationNode[FocusValue]) DerivedValue) ObservationNode[DerivedValue] {
	return ObservationNode[DerivedValue]{
		focus:     derive(node),
		context:   node.context,
		patterns:  node.patterns,
		anomalies: node.anomalies,
	}
}

// Map derives a new focus from the prior focus alone. Context, patterns, and
// anomalies carry over unchanged.
func Map[FocusValue any, DerivedValue any](node ObservationNode[FocusValue], transform func(FocusValue) DerivedValue) ObservationNode[DerivedValue] {
	return ObservationNode[DerivedValue]{
		focus:     transform(node.focus),
		context:   node.context,
		patterns:  node.patterns,
		anomalies: node.anomalies,
	}
}
