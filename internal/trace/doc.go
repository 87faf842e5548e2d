// Package trace provides the shared primitives for algorithm execution traces.
//
// A trace is the complete, ordered list of states ("steps") an algorithm
// passes through for one fixed input. Tracers build it eagerly in a single
// synchronous pass and hand it out as an immutable [Sequence]:
//
//   - [Sequence]: finite, 0-indexed, read-only list of steps
//   - [Error]: typed failure carrying one of the sentinel kinds below
//   - [ErrInvalidArgument]: malformed construction parameters
//   - [ErrInvalidInput]: semantically invalid tracer input
//
// # Ownership
//
// Steps returned by a Sequence share their slices with the sequence. Callers
// must treat them as read-only; tracers never keep a live reference to a
// structure they continue to mutate.
package trace
