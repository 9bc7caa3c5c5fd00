package solver

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/bnema/toah-cli/internal/domain"
)

var ErrInvalidSplit = errors.New("invalid split")

// Planner computes move counts of the four-stool strategy and picks the split
// that minimises them. Results for each cheese count are memoised, so a
// Planner must not be shared between goroutines.
type Planner struct {
	splits map[int]int
	counts map[int]uint64
}

func NewPlanner() *Planner {
	return &Planner{
		splits: map[int]int{},
		counts: map[int]uint64{},
	}
}

// MoveCount returns the number of moves needed to move n cheeses when the top
// n-i are moved with four stools, the bottom i with three stools, and the n-i
// are moved back with four stools. Counts saturate at math.MaxUint64.
func (p *Planner) MoveCount(n, i int) (uint64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: cheese count %d must be positive", ErrInvalidSplit, n)
	}
	if n == 1 {
		return 1, nil
	}
	if i < 1 || i >= n {
		return 0, fmt.Errorf("%w: split %d must be in [1, %d]", ErrInvalidSplit, i, n-1)
	}

	return p.moveCount(n, i), nil
}

// BestSplit returns the split in [1, n-1] with the fewest moves, preferring
// the smallest split on ties. It returns 0 when n <= 1.
func (p *Planner) BestSplit(n int) int {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}

	if split, ok := p.splits[n]; ok {
		return split
	}

	best, bestCount := 1, p.moveCount(n, 1)
	for i := 2; i < n; i++ {
		if count := p.moveCount(n, i); count < bestCount {
			best, bestCount = i, count
		}
	}

	p.splits[n] = best
	p.counts[n] = bestCount
	return best
}

// MinMoves is the move count under the best split.
func (p *Planner) MinMoves(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 1
	}

	if count, ok := p.counts[n]; ok {
		return count
	}

	count := p.moveCount(n, p.BestSplit(n))
	p.counts[n] = count
	return count
}

func (p *Planner) Plan(upTo int) []domain.PlanEntry {
	entries := make([]domain.PlanEntry, 0, max(upTo, 0))
	for n := 1; n <= upTo; n++ {
		entries = append(entries, domain.PlanEntry{
			Cheeses: n,
			Split:   p.BestSplit(n),
			Moves:   p.MinMoves(n),
		})
	}

	return entries
}

func (p *Planner) moveCount(n, i int) uint64 {
	if n == 1 {
		return 1
	}

	return addSaturating(doubleSaturating(p.MinMoves(n-i)), ThreeStoolMoves(i))
}

// ThreeStoolMoves is the classical 2^n - 1.
func ThreeStoolMoves(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return math.MaxUint64
	}

	return 1<<uint(n) - 1
}

func doubleSaturating(v uint64) uint64 {
	if v > math.MaxUint64/2 {
		return math.MaxUint64
	}

	return v * 2
}

func addSaturating(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return sum
}
