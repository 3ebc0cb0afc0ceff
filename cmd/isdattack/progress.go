package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ericlevine/isdgo/bench"
)

type runProgressMsg struct {
	done, total int
}

type benchDoneMsg struct{}

type progressModel struct {
	cfg      bench.Config
	index    int
	count    int
	done     int
	spinner  spinner.Model
	bar      progress.Model
	cancel   context.CancelFunc
	finished bool
}

func newProgressModel(cfg bench.Config, index, count int, cancel context.CancelFunc) *progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	return &progressModel{
		cfg:     cfg,
		index:   index,
		count:   count,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(48)),
		cancel:  cancel,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()
			return m, tea.Quit
		}

	case runProgressMsg:
		m.done = msg.done
		return m, m.bar.SetPercent(float64(msg.done) / float64(msg.total))

	case benchDoneMsg:
		m.finished = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("benchmark %d/%d", m.index, m.count)))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View() + " " + m.cfg.String() + "\n\n")
	b.WriteString(m.bar.View())
	b.WriteString(fmt.Sprintf("  %d/%d runs\n\n", m.done, m.cfg.Runs))
	b.WriteString(helpStyle.Render("q cancel"))
	b.WriteString("\n")
	return b.String()
}

type benchOutcome struct {
	results []bench.Result
	err     error
}

// runWithProgress runs one benchmark behind a progress bar. Quitting the view
// cancels the remaining runs.
func runWithProgress(ctx context.Context, cfg bench.Config, opts bench.RunOptions, index, count int) ([]bench.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newProgressModel(cfg, index, count, cancel)
	p := tea.NewProgram(m)
	opts.Progress = func(done, total int) {
		p.Send(runProgressMsg{done: done, total: total})
	}
	out := make(chan benchOutcome, 1)
	go func() {
		results, err := bench.Run(ctx, cfg, opts)
		out <- benchOutcome{results: results, err: err}
		p.Send(benchDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-out
		return nil, fmt.Errorf("progress view: %w", err)
	}
	cancel()
	res := <-out
	return res.results, res.err
}
