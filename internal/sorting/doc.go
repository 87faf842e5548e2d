// Package sorting records bubble, merge and quick sort runs as traces.
//
// Every [Step] carries a full copy of the array together with Origin, the
// input position of each value, so the permutation and stability of a run can
// be checked at any step. Tracers validate their input before emitting
// anything and never modify the caller's slice.
package sorting
