package viz

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/superfield/internal/anim"
)

// Model shows a figure and advances its animation on every tick.
type Model struct {
	fig   *Figure
	anim  *anim.Animation
	title string
}

func NewModel(title string, fig *Figure, a *anim.Animation) Model {
	return Model{fig: fig, anim: a, title: title}
}

func (m Model) Init() tea.Cmd {
	m.fig.Draw(nil)
	return m.anim.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case anim.TickMsg:
		cmd := m.anim.Advance()
		if err := m.anim.Err(); err != nil {
			log.Printf("animation stopped: %v", err)
			return m, nil
		}
		m.fig.Draw(m.anim.Changed())
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	th := m.fig.Theme
	header := lipgloss.NewStyle().Bold(true).Foreground(th.Primary)
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	status := "waiting"
	if f, ok := m.anim.Frame(); ok {
		status = fmt.Sprintf("frame %d", f)
	}
	switch {
	case m.anim.Err() != nil:
		status = lipgloss.NewStyle().Foreground(th.Error).Render("stopped: " + m.anim.Err().Error())
	case m.anim.Done():
		status += " (done)"
	}

	var s strings.Builder
	s.WriteString(header.Render(m.title) + "  " + status + "\n")
	s.WriteString(m.fig.View() + "\n")
	s.WriteString(muted.Render("q: quit"))
	return s.String()
}

// Err reports why the animation stopped, if it failed.
func (m Model) Err() error { return m.anim.Err() }

// Run shows the model full screen until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("animation: %w", fm.Err())
	}
	return nil
}
