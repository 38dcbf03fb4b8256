// Package anim drives a per-frame callback from bubbletea ticks.
package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/superfield/internal/field"
)

// UpdateFunc is invoked once per tick with the current frame index and
// returns the surfaces it changed.
type UpdateFunc func(frame int) ([]field.Surface, error)

// TickMsg asks the animation for its next frame.
type TickMsg time.Time

// Animation calls Update for each entry of Frames, one per Interval.
type Animation struct {
	Frames   []int
	Interval time.Duration
	Update   UpdateFunc
	// Blit redraws only the surfaces returned by Update.
	Blit bool
	// Repeat restarts from the first frame after the last one.
	Repeat bool

	pos     int
	current int
	started bool
	done    bool
	err     error
	changed []field.Surface
}

// Frames returns the half-open integer range [start, stop) in steps of step.
func Frames(start, stop, step int) []int {
	if step <= 0 || stop <= start {
		return nil
	}
	out := make([]int, 0, (stop-start+step-1)/step)
	for f := start; f < stop; f += step {
		out = append(out, f)
	}
	return out
}

func (a *Animation) Init() tea.Cmd {
	if len(a.Frames) == 0 || a.Update == nil {
		a.done = true
		return nil
	}
	return a.tick()
}

func (a *Animation) tick() tea.Cmd {
	return tea.Tick(a.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Step runs the callback for the next frame without scheduling a tick.
func (a *Animation) Step() error {
	if a.done {
		return nil
	}
	frame := a.Frames[a.pos]
	changed, err := a.Update(frame)
	if err != nil {
		a.err, a.done = err, true
		return err
	}
	a.current, a.started, a.changed = frame, true, changed
	a.pos++
	if a.pos >= len(a.Frames) {
		if a.Repeat {
			a.pos = 0
		} else {
			a.done = true
		}
	}
	return nil
}

// Advance handles a TickMsg and returns the command for the following tick,
// or nil once the animation has finished or failed.
func (a *Animation) Advance() tea.Cmd {
	if a.done {
		return nil
	}
	if err := a.Step(); err != nil {
		return nil
	}
	if a.done {
		return nil
	}
	return a.tick()
}

// Frame reports the last frame drawn. ok is false before the first tick.
func (a *Animation) Frame() (frame int, ok bool) { return a.current, a.started }

func (a *Animation) Done() bool { return a.done }
func (a *Animation) Err() error  { return a.err }

// Changed returns the surfaces to redraw for the last frame. A nil result
// means the whole figure.
func (a *Animation) Changed() []field.Surface {
	if !a.Blit {
		return nil
	}
	return a.changed
}
