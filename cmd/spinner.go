package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/lms-cli/internal/adapters/httpapi"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type callDoneMsg struct {
	err error
}

type progressMsg httpapi.Progress

// callSpinnerModel shows which route is in flight and, once the dispatcher
// starts retrying, the attempt number or the pending backoff.
type callSpinnerModel struct {
	spinner  spinner.Model
	label    string
	progress httpapi.Progress
	call     tea.Cmd
	err      error
	done     bool
}

func newCallSpinnerModel(label string, call tea.Cmd) callSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return callSpinnerModel{
		spinner: s,
		label:   label,
		call:    call,
	}
}

func (m callSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m callSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		m.progress = httpapi.Progress(msg)
		return m, nil
	case callDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m callSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), progressLabel(m.label, m.progress))
}

func progressLabel(label string, p httpapi.Progress) string {
	if p.Attempt == 0 {
		return label
	}
	if p.Path != "" {
		label = p.Method + " " + p.Path
	}

	switch {
	case p.Backoff > 0:
		return fmt.Sprintf("%s failed (attempt %d/%d), retrying in %s", label, p.Attempt, p.MaxAttempts, p.Backoff.Round(time.Millisecond))
	case p.Attempt > 1:
		return fmt.Sprintf("%s (attempt %d/%d)", label, p.Attempt, p.MaxAttempts)
	default:
		return label
	}
}

// runWithSpinner shows a spinner on output while call runs. Dispatcher
// progress reported on call's context updates the spinner label. The call's
// error is returned as is.
func runWithSpinner(ctx context.Context, output io.Writer, label string, call func(context.Context) error) error {
	var p *tea.Program
	callCmd := func() tea.Msg {
		callCtx := httpapi.WithProgress(ctx, func(progress httpapi.Progress) {
			p.Send(progressMsg(progress))
		})
		return callDoneMsg{err: call(callCtx)}
	}

	p = tea.NewProgram(
		newCallSpinnerModel(label, callCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(callSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
