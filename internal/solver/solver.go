package solver

import "fmt"

// Mover applies a single move to the puzzle state. *domain.Model implements it.
type Mover interface {
	Move(source, destination int) error
}

// TourStools assigns source, destination and the two auxiliaries for the
// standard tour from the first stool to the fourth.
var TourStools = [4]int{0, 3, 1, 2}

type Solver struct {
	planner *Planner
}

func New(planner *Planner) *Solver {
	if planner == nil {
		planner = NewPlanner()
	}

	return &Solver{planner: planner}
}

func (s *Solver) Planner() *Planner {
	return s.planner
}

// Tour moves n cheeses from stool 0 to stool 3 using all four stools.
func (s *Solver) Tour(m Mover, n int) error {
	return s.MoveFourStools(m, n, TourStools)
}

// MoveFourStools moves n cheeses from stools[0] to stools[1] using stools[2]
// and stools[3] as intermediates.
func (s *Solver) MoveFourStools(m Mover, n int, stools [4]int) error {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return move(m, n, stools[0], stools[1])
	}

	i := s.planner.BestSplit(n)
	source, destination, aux1, aux2 := stools[0], stools[1], stools[2], stools[3]

	if err := s.MoveFourStools(m, n-i, [4]int{source, aux1, destination, aux2}); err != nil {
		return err
	}
	if err := MoveThreeStools(m, i, [3]int{source, destination, aux2}); err != nil {
		return err
	}

	return s.MoveFourStools(m, n-i, [4]int{aux1, destination, source, aux2})
}

// MoveThreeStools moves n cheeses from stools[0] to stools[1] through
// stools[2], the classical way.
func MoveThreeStools(m Mover, n int, stools [3]int) error {
	if n <= 0 {
		return nil
	}

	source, destination, spare := stools[0], stools[1], stools[2]
	if err := MoveThreeStools(m, n-1, [3]int{source, spare, destination}); err != nil {
		return err
	}
	if err := move(m, n, source, destination); err != nil {
		return err
	}

	return MoveThreeStools(m, n-1, [3]int{spare, destination, source})
}

func move(m Mover, n, source, destination int) error {
	if err := m.Move(source, destination); err != nil {
		return fmt.Errorf("move top of %d cheeses from stool %d to %d: %w", n, source, destination, err)
	}

	return nil
}
