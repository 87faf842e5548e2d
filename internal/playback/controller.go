package playback

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/algotrace/internal/trace"
)

// DefaultSpeed is the autoplay delay between steps.
const DefaultSpeed = 1000 * time.Millisecond

// Snapshot is the read model of a controller at one instant. Index is -1
// before the first step; HasStep is false then.
type Snapshot[S any] struct {
	Step    S
	HasStep bool
	Index   int
	Total   int
	Running bool
	State   State
	Speed   time.Duration
}

type settings struct {
	scheduler Scheduler
	speed     time.Duration
	logger    zerolog.Logger
}

type Option func(*settings)

func WithScheduler(s Scheduler) Option {
	return func(o *settings) { o.scheduler = s }
}

// WithSpeed sets the initial autoplay delay. Non-positive values are ignored.
func WithSpeed(d time.Duration) Option {
	return func(o *settings) {
		if d > 0 {
			o.speed = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *settings) { o.logger = l }
}

// Controller steps through one trace. It is safe for concurrent use; timer
// callbacks arrive on the scheduler's goroutine.
//
// Every call that invalidates the session (Attach, Pause, Reset, Close) stops
// the pending timer and bumps gen. A callback whose generation no longer
// matches returns without touching the session, which covers timers that
// fire after Stop has lost the race.
type Controller[S any] struct {
	mu        sync.Mutex
	seq       trace.Sequence[S]
	index     int
	state     State
	speed     time.Duration
	scheduler Scheduler
	timer     Timer
	gen       uint64
	closed    bool
	observer  func(Snapshot[S])
	log       zerolog.Logger
}

// New returns an idle controller with no trace attached.
func New[S any](opts ...Option) *Controller[S] {
	o := settings{
		scheduler: SystemScheduler(),
		speed:     DefaultSpeed,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[S]{
		index:     -1,
		state:     StateIdle,
		speed:     o.speed,
		scheduler: o.scheduler,
		log:       o.logger.With().Str("component", "playback").Logger(),
	}
}

// Observe registers fn to receive a snapshot after every change, including
// autoplay ticks. fn runs outside the controller's lock and may call back
// into the controller. A nil fn removes the observer.
func (c *Controller[S]) Observe(fn func(Snapshot[S])) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// Attach replaces the trace, cancels autoplay and returns to idle at -1.
func (c *Controller[S]) Attach(seq trace.Sequence[S]) {
	c.mu.Lock()
	c.cancelLocked()
	c.seq = seq
	c.index = -1
	c.setStateLocked(StateIdle)
	c.log.Debug().Int("total", seq.Len()).Msg("trace attached")
	c.unlockAndNotify()
}

// Start begins autoplay. From -1 it first moves to step 0. With nothing left
// to play (empty trace or already at the last step) it completes without
// scheduling. Calling Start while playing does nothing.
func (c *Controller[S]) Start() {
	c.mu.Lock()
	if c.closed || c.state == StatePlaying {
		c.mu.Unlock()
		return
	}

	n := c.seq.Len()
	if n > 0 && c.index < 0 {
		c.index = 0
	}
	if n == 0 || c.index >= n-1 {
		c.setStateLocked(StateComplete)
		c.unlockAndNotify()
		return
	}

	c.setStateLocked(StatePlaying)
	c.scheduleLocked()
	c.unlockAndNotify()
}

// Pause stops autoplay and leaves the index where it is.
func (c *Controller[S]) Pause() {
	c.mu.Lock()
	c.cancelLocked()
	c.setStateLocked(StatePaused)
	c.unlockAndNotify()
}

// Reset stops autoplay and rewinds to -1.
func (c *Controller[S]) Reset() {
	c.mu.Lock()
	c.cancelLocked()
	c.index = -1
	c.setStateLocked(StateIdle)
	c.unlockAndNotify()
}

func (c *Controller[S]) StepForward() {
	c.mu.Lock()
	c.moveLocked(c.index + 1)
	c.unlockAndNotify()
}

func (c *Controller[S]) StepBackward() {
	c.mu.Lock()
	c.moveLocked(c.index - 1)
	c.unlockAndNotify()
}

// Seek jumps to i, clamped to [-1, Total()-1].
func (c *Controller[S]) Seek(i int) {
	c.mu.Lock()
	c.moveLocked(i)
	c.unlockAndNotify()
}

// SetSpeed changes the delay used for the next scheduled advance. A timer
// already pending keeps its original deadline.
func (c *Controller[S]) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return trace.InvalidArgument("playback.SetSpeed", "speed must be positive, got %s", d)
	}
	c.mu.Lock()
	c.speed = d
	c.unlockAndNotify()
	return nil
}

// Close cancels autoplay for good. Later calls to Start are ignored.
func (c *Controller[S]) Close() {
	c.mu.Lock()
	c.cancelLocked()
	c.closed = true
	if c.state == StatePlaying {
		c.setStateLocked(StatePaused)
	}
	c.mu.Unlock()
}

func (c *Controller[S]) Snapshot() Snapshot[S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[S]) Current() (S, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.At(c.index)
}

func (c *Controller[S]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Controller[S]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.Len()
}

func (c *Controller[S]) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StatePlaying
}

func (c *Controller[S]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[S]) Speed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *Controller[S]) moveLocked(i int) {
	last := c.seq.Len() - 1
	if i < -1 {
		i = -1
	}
	if i > last {
		i = last
	}
	if i == c.index {
		return
	}
	c.index = i
	if c.state == StateComplete && i < last {
		c.setStateLocked(StatePaused)
	}
}

func (c *Controller[S]) scheduleLocked() {
	gen := c.gen
	c.timer = c.scheduler.AfterFunc(c.speed, func() { c.tick(gen) })
}

func (c *Controller[S]) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Controller[S]) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != StatePlaying {
		c.log.Debug().Uint64("gen", gen).Msg("stale tick ignored")
		c.mu.Unlock()
		return
	}
	c.timer = nil

	last := c.seq.Len() - 1
	if c.index < last {
		c.index++
	}
	if c.index >= last {
		c.setStateLocked(StateComplete)
	} else {
		c.scheduleLocked()
	}
	c.unlockAndNotify()
}

func (c *Controller[S]) setStateLocked(s State) {
	if c.state != s {
		c.log.Debug().Stringer("from", c.state).Stringer("to", s).Int("index", c.index).Msg("state change")
	}
	c.state = s
}

func (c *Controller[S]) snapshotLocked() Snapshot[S] {
	step, ok := c.seq.At(c.index)
	return Snapshot[S]{
		Step:    step,
		HasStep: ok,
		Index:   c.index,
		Total:   c.seq.Len(),
		Running: c.state == StatePlaying,
		State:   c.state,
		Speed:   c.speed,
	}
}

// unlockAndNotify releases the lock and then hands the observer a snapshot
// taken while it was still held.
func (c *Controller[S]) unlockAndNotify() {
	snap := c.snapshotLocked()
	fn := c.observer
	c.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}
