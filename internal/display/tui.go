package display

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/drawpoker/internal/game"
)

// PromptModel is the bubbletea model for a single discard decision.
type PromptModel struct {
	view     game.PlayerView
	renderer *Renderer
	styles   *Styles
	input    textinput.Model

	width   int
	errText string
	chosen  []int
	done    bool
	aborted bool
}

// NewPromptModel creates a prompt for the given view.
func NewPromptModel(view game.PlayerView, styles *Styles) *PromptModel {
	if styles == nil {
		styles = DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. 0,2 (enter to stand pat)"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.Prompt = "> "

	return &PromptModel{
		view:     view,
		renderer: NewRenderer(styles),
		styles:   styles,
		input:    ti,
	}
}

// Init implements tea.Model
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit

		case "enter":
			indexes, err := game.ParseDiscards(m.input.Value(), len(m.view.Hand), m.view.MaxDiscards)
			if err != nil {
				m.errText = err.Error()
				m.input.SetValue("")
				return m, nil
			}
			m.chosen = indexes
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *PromptModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderer.View(m.view))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Prompt.Render(m.view.Name + ", which cards do you want to swap?"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	if m.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(m.errText))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Info.Render("esc to quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Result returns the submitted indexes, or ErrAborted if the prompt was
// cancelled or never completed.
func (m *PromptModel) Result() ([]int, error) {
	if m.aborted || !m.done {
		return nil, game.ErrAborted
	}
	return m.chosen, nil
}

// PromptAgent asks a human for discards with an interactive terminal prompt.
type PromptAgent struct {
	styles *Styles
	in     io.Reader
	out    io.Writer
}

// NewPromptAgent returns an agent bound to the given terminal streams. Nil
// streams use the process's stdin and stdout.
func NewPromptAgent(in io.Reader, out io.Writer, styles *Styles) *PromptAgent {
	return &PromptAgent{styles: styles, in: in, out: out}
}

// ChooseDiscards implements game.Agent by running one bubbletea program.
func (a *PromptAgent) ChooseDiscards(ctx context.Context, view game.PlayerView) ([]int, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.in != nil {
		opts = append(opts, tea.WithInput(a.in))
	}
	if a.out != nil {
		opts = append(opts, tea.WithOutput(a.out))
	}

	final, err := tea.NewProgram(NewPromptModel(view, a.styles), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	m, ok := final.(*PromptModel)
	if !ok {
		return nil, game.ErrAborted
	}
	return m.Result()
}
