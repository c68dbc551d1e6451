package drill

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/carlyclark26/PharmC-Quiz/internal/ui/components"
	"github.com/carlyclark26/PharmC-Quiz/internal/ui/theme"
)

// Model is the Bubble Tea model for a drill session. It walks the
// question list one at a time: answer, see feedback, enter to advance.
type Model struct {
	questions []Question
	idx       int

	mc  components.MultiChoice
	ti  components.TextInput
	fed bool // feedback shown for the current question

	correct int
	done    bool
}

// New creates a session model over questions.
func New(questions []Question) Model {
	m := Model{questions: questions}
	if len(questions) == 0 {
		m.done = true
		return m
	}
	m.loadCurrent()
	return m
}

func (m *Model) loadCurrent() {
	q := m.questions[m.idx]
	if q.MC != nil {
		m.mc = components.NewMultiChoice(*q.MC)
	} else {
		m.ti = components.NewTextInput("type your answer")
	}
	m.fed = false
}

// Correct returns the number of correctly answered questions.
func (m Model) Correct() int { return m.correct }

// Total returns the number of questions in the session.
func (m Model) Total() int { return len(m.questions) }

func (m Model) Init() tea.Cmd {
	if len(m.questions) > 0 && m.questions[0].FIB != nil {
		return m.ti.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	if m.done {
		if isKey {
			return m, tea.Quit
		}
		return m, nil
	}

	// After feedback, enter moves on.
	if m.fed {
		if isKey && kmsg.String() == "enter" {
			return m.advance()
		}
		return m, nil
	}

	q := m.questions[m.idx]
	if q.MC != nil {
		var cmd tea.Cmd
		m.mc, cmd = m.mc.Update(msg)
		if m.mc.Submitted {
			m.fed = true
			if m.mc.IsCorrect() {
				m.correct++
			}
		}
		return m, cmd
	}

	if isKey && kmsg.String() == "enter" {
		ok := CheckAnswer(m.ti.Value(), q.FIB.Answer)
		m.ti.Submit(ok)
		m.fed = true
		if ok {
			m.correct++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.idx++
	if m.idx >= len(m.questions) {
		m.done = true
		return m, nil
	}
	m.loadCurrent()
	var cmd tea.Cmd
	if m.questions[m.idx].FIB != nil {
		cmd = m.ti.Init()
	}
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	if m.done {
		summary := fmt.Sprintf("Session complete: %d/%d correct", m.correct, len(m.questions))
		return theme.Title.Render(summary) + "\n" + theme.Hint.Render("press any key to exit") + "\n"
	}

	q := m.questions[m.idx]
	header := theme.Subtitle.Render(fmt.Sprintf("Question %d/%d", m.idx+1, len(m.questions)))

	var body, footer string
	if q.MC != nil {
		body = m.mc.View()
		if m.fed {
			footer = m.feedback(m.mc.IsCorrect(), q.MC.Answer)
		} else {
			footer = theme.Hint.Render("↑↓ select · enter submit · esc quit")
		}
	} else {
		body = theme.Body.Bold(true).Render(q.FIB.Question) + "\n\n" + m.ti.View() + "\n"
		if m.fed {
			footer = m.feedback(CheckAnswer(m.ti.Value(), q.FIB.Answer), q.FIB.Answer)
		} else {
			footer = theme.Hint.Render("enter submit · esc quit")
		}
	}

	return header + "\n\n" + body + "\n" + footer + "\n"
}

func (m Model) feedback(correct bool, answer string) string {
	var line string
	if correct {
		line = theme.Correct.Render("✓ Correct!")
	} else {
		line = theme.Incorrect.Render("✗ Wrong.") + " " + theme.Body.Render("Answer: "+answer)
	}
	return line + "\n" + theme.Hint.Render("enter to continue")
}

// Run starts the Bubble Tea program and returns the finished model.
func Run(questions []Question) (Model, error) {
	p := tea.NewProgram(New(questions))
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("run session: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected final model %T", final)
	}
	return m, nil
}
