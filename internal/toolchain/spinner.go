package toolchain

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// withSpinner runs fn while a spinner labelled message renders to w.
func withSpinner(w io.Writer, message string, fn func() bool) bool {
	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil))

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		// Spinner errors never affect the result.
		_, _ = p.Run()
	}()

	ok := fn()
	p.Send(spinnerDoneMsg{ok: ok})

	select {
	case <-finished:
	case <-time.After(200 * time.Millisecond):
		p.Quit()
		<-finished
	}
	return ok
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	ok      bool
}

type spinnerDoneMsg struct {
	ok bool
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &spinnerModel{spinner: s, message: message}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.ok = msg.ok
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if !m.ok {
			return fmt.Sprintf("%s (offline)\n", m.message)
		}
		return fmt.Sprintf("%s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}
