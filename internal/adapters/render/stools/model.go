package stools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/toah-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type AnimateOptions struct {
	Cheeses int
	Stools  int
	Moves   domain.MoveSequence
	Delay   time.Duration
}

type stepMsg struct{}

type model struct {
	board  *domain.Model
	moves  []domain.Move
	next   int
	delay  time.Duration
	styles styles
	err    error
}

func newModel(board *domain.Model, opts AnimateOptions) model {
	return model{
		board:  board,
		moves:  opts.Moves.Moves(),
		delay:  opts.Delay,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.moves) == 0 {
		return tea.Quit
	}

	return m.step()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case stepMsg:
		if m.next >= len(m.moves) {
			return m, tea.Quit
		}

		move := m.moves[m.next]
		if err := m.board.Move(move.Source, move.Destination); err != nil {
			m.err = fmt.Errorf("apply move %d (%s): %w", m.next, move, err)
			return m, tea.Quit
		}
		m.next++

		if m.next == len(m.moves) {
			return m, tea.Quit
		}
		return m, m.step()
	default:
		return m, nil
	}
}

func (m model) View() string {
	view := renderView(m.board, m.styles)
	if m.err != nil {
		view += "\n" + m.styles.failed.Render(m.err.Error())
	}

	return view + "\n"
}

func (m model) step() tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg {
			return stepMsg{}
		}
	}

	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return stepMsg{}
	})
}

// Animate replays opts.Moves on freshly filled stools, redrawing out after
// every move, and returns the final stools.
func Animate(ctx context.Context, out io.Writer, opts AnimateOptions) (*domain.Model, error) {
	board := domain.NewModel(opts.Stools)
	if err := board.Fill(opts.Cheeses); err != nil {
		return nil, fmt.Errorf("fill stools: %w", err)
	}

	p := tea.NewProgram(
		newModel(board, opts),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(model)
	if !ok {
		return nil, ErrUnexpectedRenderModel
	}
	if result.err != nil {
		return nil, result.err
	}

	return result.board, nil
}
