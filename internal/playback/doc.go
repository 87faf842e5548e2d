// Package playback navigates a finished trace forward, backward or on a
// timer. A [Controller] owns one trace and at most one pending autoplay
// timer; timers come from a [Scheduler] so tests can drive the clock by hand
// with a [ManualScheduler].
package playback
