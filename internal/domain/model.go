package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Model holds stools of cheese and enforces that a larger cheese is never
// placed on a smaller one. Only successful moves are recorded.
type Model struct {
	stools  [][]Cheese
	cheeses int
	moves   MoveSequence
}

func NewModel(stools int) *Model {
	if stools < 0 {
		stools = 0
	}

	return &Model{stools: make([][]Cheese, stools)}
}

// Fill stacks cheeses of sizes n down to 1 on the first stool.
func (m *Model) Fill(n int) error {
	for index, stool := range m.stools {
		if len(stool) > 0 {
			return fmt.Errorf("%w: stool %d holds %d cheeses", ErrAlreadyFilled, index, len(stool))
		}
	}
	if n < 0 {
		return fmt.Errorf("fill first stool: negative cheese count %d", n)
	}

	for size := n; size > 0; size-- {
		if err := m.Add(NewCheese(size), 0); err != nil {
			return fmt.Errorf("fill first stool: %w", err)
		}
	}
	m.cheeses = n

	return nil
}

func (m *Model) NumberOfStools() int {
	return len(m.stools)
}

func (m *Model) NumberOfCheeses() int {
	return m.cheeses
}

func (m *Model) NumberOfMoves() int {
	return m.moves.Len()
}

func (m *Model) MoveSeq() MoveSequence {
	return NewMoveSequence(m.moves.moves...)
}

// Stool returns a copy of the cheeses on a stool, bottom first.
func (m *Model) Stool(index int) []Cheese {
	if !m.validStool(index) {
		return nil
	}

	return slices.Clone(m.stools[index])
}

func (m *Model) CheeseAt(stool, height int) (Cheese, bool) {
	if !m.validStool(stool) || height < 0 || height >= len(m.stools[stool]) {
		return Cheese{}, false
	}

	return m.stools[stool][height], true
}

func (m *Model) TopCheese(stool int) (Cheese, bool) {
	if !m.validStool(stool) {
		return Cheese{}, false
	}

	return m.CheeseAt(stool, len(m.stools[stool])-1)
}

func (m *Model) CheeseLocation(c Cheese) (int, error) {
	for index, stool := range m.stools {
		for _, candidate := range stool {
			if candidate.Equal(c) {
				return index, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: size %d", ErrCheeseNotFound, c.Size)
}

func (m *Model) Add(c Cheese, stool int) error {
	if !m.validStool(stool) {
		return fmt.Errorf("%w: stool %d does not exist", ErrIllegalMove, stool)
	}

	if top, ok := m.TopCheese(stool); ok && c.Size > top.Size {
		return fmt.Errorf("%w: cannot put cheese %d on smaller cheese %d", ErrIllegalMove, c.Size, top.Size)
	}

	m.stools[stool] = append(m.stools[stool], c)
	return nil
}

func (m *Model) RemoveTopCheese(stool int) (Cheese, error) {
	if !m.validStool(stool) {
		return Cheese{}, fmt.Errorf("%w: stool %d does not exist", ErrIllegalMove, stool)
	}

	stack := m.stools[stool]
	if len(stack) == 0 {
		return Cheese{}, fmt.Errorf("%w: stool %d is empty", ErrIllegalMove, stool)
	}

	top := stack[len(stack)-1]
	m.stools[stool] = stack[:len(stack)-1]
	return top, nil
}

// Move takes the top cheese from source and puts it on destination. A failed
// move leaves the model unchanged.
func (m *Model) Move(source, destination int) error {
	if source == destination {
		return fmt.Errorf("%w: source and destination are both stool %d", ErrIllegalMove, source)
	}
	if !m.validStool(destination) {
		return fmt.Errorf("%w: stool %d does not exist", ErrIllegalMove, destination)
	}

	cheese, err := m.RemoveTopCheese(source)
	if err != nil {
		return err
	}

	if err := m.Add(cheese, destination); err != nil {
		m.stools[source] = append(m.stools[source], cheese)
		return err
	}

	m.moves.Add(source, destination)
	return nil
}

// Equal reports whether both models show the same cheeses on the same stools.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}

	return slices.EqualFunc(m.stools, other.stools, func(a, b []Cheese) bool {
		return slices.EqualFunc(a, b, Cheese.Equal)
	})
}

func (m *Model) String() string {
	maxSize := 0
	for _, stool := range m.stools {
		for _, c := range stool {
			maxSize = max(maxSize, c.Size)
		}
	}

	width := 2*maxSize + 1
	const spacing = "  "

	var b strings.Builder
	for height := m.cheeses - 1; height >= 0; height-- {
		for stool := range m.stools {
			size := 0
			if c, ok := m.CheeseAt(stool, height); ok {
				size = c.Size
			}
			b.WriteString(cheeseString(size, width))
			b.WriteString(spacing)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(strings.Repeat("=", width)+spacing, len(m.stools)))

	return b.String()
}

func cheeseString(size, width int) string {
	if size <= 0 {
		return strings.Repeat(" ", width)
	}

	part := strings.Repeat("-", 2*size-1)
	filler := strings.Repeat(" ", (width-len(part))/2)
	return filler + part + filler
}

func (m *Model) validStool(index int) bool {
	return index >= 0 && index < len(m.stools)
}
