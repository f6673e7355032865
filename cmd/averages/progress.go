package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wxaverages/internal/binding"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7798BF"))

type taskDoneMsg struct{}

// progressModel shows a spinner until the binding task finishes. ctrl+c
// cancels the run and keeps waiting for the task to wind down.
type progressModel struct {
	spinner spinner.Model
	task    *binding.Task
	cancel  context.CancelFunc
	source  string
	done    bool
}

func newProgressModel(task *binding.Task, cancel context.CancelFunc, source string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return progressModel{spinner: s, task: task, cancel: cancel, source: source}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForTask(m.task))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && m.cancel != nil {
			m.cancel()
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Rendering chart from %s\n", m.spinner.View(), m.source)
}

func waitForTask(task *binding.Task) tea.Cmd {
	return func() tea.Msg {
		<-task.Done()
		return taskDoneMsg{}
	}
}

// runWithProgress starts the pipeline and animates a spinner on out until it
// finishes. The task is always finished when this returns.
func runWithProgress(ctx context.Context, out io.Writer, source string, start func(context.Context) *binding.Task) *binding.Task {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	task := start(ctx)
	program := tea.NewProgram(newProgressModel(task, cancel, source), tea.WithOutput(out), tea.WithContext(ctx))
	_, _ = program.Run()

	<-task.Done()
	return task
}
