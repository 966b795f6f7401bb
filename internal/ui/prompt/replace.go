package prompt

import (
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/cbtr/internal/ui/styles"
)

// Answer is the reply to a replace question.
type Answer int

const (
	// AnswerNo keeps the existing file. Enter without input answers no.
	AnswerNo Answer = iota
	// AnswerYes replaces this file.
	AnswerYes
	// AnswerAll replaces this file and every later one without asking.
	AnswerAll
	// AnswerCancel stops asking and keeps this and every later file.
	AnswerCancel
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerAll:
		return "all"
	case AnswerCancel:
		return "cancel"
	default:
		return "no"
	}
}

type replaceModel struct {
	path    string
	current string // what occupies path now
	answer  Answer
	done    bool
}

func (m replaceModel) Init() tea.Cmd {
	return nil
}

func (m replaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.answer = AnswerYes
	case "a", "A":
		m.answer = AnswerAll
	case "n", "N", "enter":
		m.answer = AnswerNo
	case "ctrl+c", "q", "esc":
		m.answer = AnswerCancel
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

// text is the question line; empty once answered so the prompt clears.
func (m replaceModel) text() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("Replace %s (%s)? %s ",
		styles.Bold.Render(m.path),
		m.current,
		styles.MutedStyle.Render("[y/N/a]"))
}

func (m replaceModel) View() tea.View {
	return tea.NewView(m.text())
}

// AskReplace asks on out whether the file at path, described by current
// (see link.Describe), may be replaced by a cbtr link.
func AskReplace(in io.Reader, out io.Writer, path, current string) (Answer, error) {
	p := tea.NewProgram(replaceModel{path: path, current: current},
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithColorProfile(colorprofile.Detect(out, os.Environ())),
	)
	final, err := p.Run()
	if err != nil {
		return AnswerCancel, fmt.Errorf("prompt: %w", err)
	}
	m := final.(replaceModel)
	if !m.done {
		return AnswerCancel, nil
	}
	return m.answer, nil
}
