package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algotrace/internal/playback"
	"github.com/san-kum/algotrace/internal/trace"
)

const (
	minSpeed = 50 * time.Millisecond
	maxSpeed = 5 * time.Second
)

// PlayerConfig wires a controller to the functions that draw its steps.
// Regenerate is optional; when set, the n key replaces the trace with a
// fresh one.
type PlayerConfig[S any] struct {
	Title      string
	Controller *playback.Controller[S]
	Render     func(S) string
	Describe   func(S) string
	Regenerate func() (trace.Sequence[S], error)
}

// refreshMsg tells the model to re-read the controller. It carries no
// snapshot because sends from timer goroutines may arrive out of order.
type refreshMsg struct{}

// Player is the bubbletea model of the trace player.
type Player[S any] struct {
	cfg      PlayerConfig[S]
	snap     playback.Snapshot[S]
	err      error
	showHelp bool
}

func NewPlayer[S any](cfg PlayerConfig[S]) Player[S] {
	return Player[S]{cfg: cfg, snap: cfg.Controller.Snapshot()}
}

func (m Player[S]) Init() tea.Cmd { return nil }

func (m Player[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctrl := m.cfg.Controller

	switch msg := msg.(type) {
	case refreshMsg:
		m.snap = ctrl.Snapshot()
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		switch msg.String() {
		case "q", "ctrl+c":
			ctrl.Close()
			return m, tea.Quit
		case " ":
			if ctrl.IsRunning() {
				ctrl.Pause()
			} else {
				ctrl.Start()
			}
		case "left", "h":
			ctrl.StepBackward()
		case "right", "l":
			ctrl.StepForward()
		case "home", "g":
			ctrl.Seek(0)
		case "end", "G":
			ctrl.Seek(ctrl.Total() - 1)
		case "r":
			ctrl.Reset()
		case "+", "=":
			m.err = ctrl.SetSpeed(max(ctrl.Speed()/2, minSpeed))
		case "-", "_":
			m.err = ctrl.SetSpeed(min(ctrl.Speed()*2, maxSpeed))
		case "n":
			if m.cfg.Regenerate != nil {
				seq, err := m.cfg.Regenerate()
				if err != nil {
					m.err = err
				} else {
					ctrl.Attach(seq)
				}
			}
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.snap = ctrl.Snapshot()
	}
	return m, nil
}

func (m Player[S]) View() string {
	snap := m.snap
	var s strings.Builder

	s.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Title)) + "\n")

	status := strings.ToUpper(snap.State.String())
	s.WriteString(statusStyle(snap.Running).Render(status))
	s.WriteString(fmt.Sprintf("  step %d / %d  %s\n", snap.Index+1, snap.Total, snap.Speed))

	progress := 0.0
	if snap.Total > 0 {
		progress = float64(snap.Index+1) / float64(snap.Total)
	}
	s.WriteString(ProgressBar(progress, 40) + "\n\n")

	if snap.HasStep {
		if m.cfg.Describe != nil {
			s.WriteString(valueStyle.Render(m.cfg.Describe(snap.Step)) + "\n\n")
		}
		s.WriteString(m.cfg.Render(snap.Step))
	} else if snap.Total == 0 {
		s.WriteString(helpStyle.Render("(empty trace)") + "\n")
	} else {
		s.WriteString(helpStyle.Render("press space to start") + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + fg(CurrentTheme.Error).Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + Separator(40) + "\n")
	if m.showHelp {
		s.WriteString(helpStyle.Render(`Space  start / pause
←/→    step backward / forward
Home   first step   End  last step
R      reset        N    regenerate input
+/-    faster / slower
T      cycle theme  Q    quit`))
	} else {
		s.WriteString(helpStyle.Render("SP:Play ←→:Step R:Reset N:New ?:Help Q:Quit"))
	}

	return panelStyle.Render(s.String())
}

// Run opens the player full screen and blocks until the user quits.
func Run[S any](cfg PlayerConfig[S]) error {
	p := tea.NewProgram(NewPlayer(cfg), tea.WithAltScreen())
	// Observers also fire from inside Update, where a blocking Send would
	// deadlock the event loop.
	cfg.Controller.Observe(func(playback.Snapshot[S]) {
		go p.Send(refreshMsg{})
	})
	defer cfg.Controller.Observe(nil)
	defer cfg.Controller.Close()

	_, err := p.Run()
	return err
}
