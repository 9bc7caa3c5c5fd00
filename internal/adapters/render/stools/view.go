package stools

import (
	"fmt"
	"strings"

	"github.com/bnema/toah-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// Render draws the stools of m with the tallest stack on top, followed by a
// base line and the number of moves made so far.
func Render(m *domain.Model) string {
	return renderView(m, newStyles())
}

func renderView(m *domain.Model, s styles) string {
	lines := []string{
		s.title.Render("Tour of Anne Hoy"),
		s.header.Render(fmt.Sprintf("stools: %d  cheeses: %d", m.NumberOfStools(), m.NumberOfCheeses())),
	}

	if m.NumberOfStools() == 0 {
		lines = append(lines, s.empty.Render("No stools to show."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, "")
	lines = append(lines, renderStools(m, s)...)
	lines = append(lines, s.counter.Render(fmt.Sprintf("moves: %d", m.NumberOfMoves())))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStools(m *domain.Model, s styles) []string {
	largest, tallest := measure(m)
	width := 2*largest + 1

	rows := make([]string, 0, tallest+1)
	for height := tallest - 1; height >= 0; height-- {
		cells := make([]string, 0, m.NumberOfStools())
		for stool := 0; stool < m.NumberOfStools(); stool++ {
			cheese, ok := m.CheeseAt(stool, height)
			cells = append(cells, renderCell(cheese, ok, width, s))
		}
		rows = append(rows, strings.Join(cells, columnGap))
	}

	bases := make([]string, 0, m.NumberOfStools())
	for stool := 0; stool < m.NumberOfStools(); stool++ {
		bases = append(bases, s.base.Render(strings.Repeat("=", width)))
	}

	return append(rows, strings.Join(bases, columnGap))
}

func renderCell(cheese domain.Cheese, ok bool, width int, s styles) string {
	if !ok {
		return strings.Repeat(" ", width)
	}

	bar := strings.Repeat("-", 2*cheese.Size-1)
	pad := strings.Repeat(" ", (width-len(bar))/2)

	return pad + s.cheese.Render(bar) + pad
}

// measure returns the largest cheese size and the highest stack on m.
func measure(m *domain.Model) (int, int) {
	largest, tallest := m.NumberOfCheeses(), 0
	for stool := 0; stool < m.NumberOfStools(); stool++ {
		stack := m.Stool(stool)
		tallest = max(tallest, len(stack))
		for _, cheese := range stack {
			largest = max(largest, cheese.Size)
		}
	}

	return largest, tallest
}
