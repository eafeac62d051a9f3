package domain

// Result pairs a value with an optional degradation reason. A fallback path
// (mock catalog instead of live feeds, canned responder instead of the LLM)
// still produces a usable value, but callers can observe that the primary
// path was unavailable instead of the substitution being silent.
type Result[T any] struct {
	Value  T
	Reason string // empty when produced by the primary path
}

// Ok wraps a value produced by the primary path
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fallback wraps a value produced by a degraded path with the reason
func Fallback[T any](v T, reason string) Result[T] {
	return Result[T]{Value: v, Reason: reason}
}

// Degraded reports whether the value came from a fallback path
func (r Result[T]) Degraded() bool {
	return r.Reason != ""
}
