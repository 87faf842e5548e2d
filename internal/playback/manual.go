package playback

import (
	"sync"
	"time"
)

// ManualScheduler is a scheduler whose clock only moves when Advance is
// called. Due callbacks run synchronously on the caller's goroutine in
// deadline order, ties in scheduling order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s    *ManualScheduler
	at   time.Duration
	seq  int
	f    func()
	done bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{s: m, at: m.now + d, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}

// Advance moves the clock forward by d and fires every callback that falls
// due, including ones scheduled by callbacks fired along the way. It returns
// the number of callbacks run.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		next.done = true
		m.remove(next)
		m.now = next.at
		m.mu.Unlock()

		next.f()
		fired++
	}
}

// Pending is the number of scheduled callbacks that have neither fired nor
// been stopped.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Now is the time elapsed on the manual clock.
func (m *ManualScheduler) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *ManualScheduler) remove(t *manualTimer) {
	for i, x := range m.timers {
		if x == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
