package playback

import "fmt"

type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
