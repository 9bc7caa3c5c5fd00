package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/toah-cli/internal/application"
	"github.com/bnema/toah-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const verifyBarWidth = 20

type verifyFunc func(ctx context.Context, upTo int, progress application.VerifyProgress) ([]domain.Verification, error)

type tourVerifiedMsg struct {
	verified int
}

type verifyFinishedMsg struct {
	results []domain.Verification
	err     error
}

// verifyProgressModel shows a spinner next to a bar of verified tours until
// the whole range is done.
type verifyProgressModel struct {
	spinner  spinner.Model
	count    lipgloss.Style
	bar      lipgloss.Style
	total    int
	verified int
	start    tea.Cmd
	results  []domain.Verification
	err      error
	finished bool
}

func newVerifyProgressModel(total int, start tea.Cmd) verifyProgressModel {
	return verifyProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		count: lipgloss.NewStyle().Bold(true),
		bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		total: total,
		start: start,
	}
}

func (m verifyProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m verifyProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tourVerifiedMsg:
		// Tours finish concurrently, so counts can arrive out of order.
		m.verified = max(m.verified, msg.verified)
		return m, nil
	case verifyFinishedMsg:
		m.finished = true
		m.results = msg.results
		m.err = msg.err
		if msg.err == nil {
			m.verified = m.total
		}
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m verifyProgressModel) View() string {
	if m.finished {
		return ""
	}

	filled := 0
	if m.total > 0 {
		filled = m.verified * verifyBarWidth / m.total
	}
	bar := "[" + m.bar.Render(strings.Repeat("=", filled)) + strings.Repeat(" ", verifyBarWidth-filled) + "]"

	return fmt.Sprintf("%s verifying tours %s %s", m.spinner.View(), bar,
		m.count.Render(fmt.Sprintf("%d/%d", m.verified, m.total)))
}

func runVerifyProgress(ctx context.Context, output io.Writer, total int, verify verifyFunc) ([]domain.Verification, error) {
	var p *tea.Program
	start := func() tea.Msg {
		results, err := verify(ctx, total, func(verified int) {
			p.Send(tourVerifiedMsg{verified: verified})
		})
		return verifyFinishedMsg{results: results, err: err}
	}

	p = tea.NewProgram(
		newVerifyProgressModel(total, start),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(verifyProgressModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final verify model type %T", finalModel)
	}

	return result.results, result.err
}
