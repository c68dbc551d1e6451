// Package components holds reusable Bubble Tea widgets for the drill
// session.
package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
	"github.com/carlyclark26/PharmC-Quiz/internal/ui/theme"
)

// MultiChoice presents one multiple-choice question with arrow-key
// selection. Options keep the labels assigned at generation time.
type MultiChoice struct {
	Question  quizgen.MultipleChoiceQuestion
	Selected  int
	Submitted bool
	Chosen    int
}

// NewMultiChoice creates a selector for q.
func NewMultiChoice(q quizgen.MultipleChoiceQuestion) MultiChoice {
	return MultiChoice{
		Question: q,
		Selected: 0,
		Chosen:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Question.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	}

	return m, nil
}

// View renders the question and its labeled options.
func (m MultiChoice) View() string {
	s := theme.Body.Bold(true).Render(m.Question.Question) + "\n\n"

	correct := m.correctIndex()
	for i, opt := range m.Question.LabeledOptions {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := prefix + opt.DisplayLabel + ")  " + opt.Text

		switch {
		case m.Submitted && i == correct:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice is the answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen == m.correctIndex()
}

func (m MultiChoice) correctIndex() int {
	for i, opt := range m.Question.Options {
		if opt == m.Question.Answer {
			return i
		}
	}
	return -1
}
