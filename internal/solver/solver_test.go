package solver

import (
	"errors"
	"testing"

	"github.com/bnema/toah-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	moves  []domain.Move
	failAt int
	err    error
}

func (r *recorder) Move(source, destination int) error {
	if r.err != nil && len(r.moves) == r.failAt {
		return r.err
	}

	r.moves = append(r.moves, domain.Move{Source: source, Destination: destination})
	return nil
}

func TestMoveThreeStoolsSolvesClassicalTower(t *testing.T) {
	for n := 1; n <= 10; n++ {
		m := domain.NewModel(3)
		require.NoError(t, m.Fill(n))

		require.NoError(t, MoveThreeStools(m, n, [3]int{0, 2, 1}))

		assert.Equal(t, int(ThreeStoolMoves(n)), m.NumberOfMoves(), "cheeses=%d", n)
		assert.Empty(t, m.Stool(0))
		assert.Empty(t, m.Stool(1))
		assert.Equal(t, descending(n), m.Stool(2))
	}
}

func TestMoveThreeStoolsNoCheesesIsNoop(t *testing.T) {
	r := &recorder{}

	require.NoError(t, MoveThreeStools(r, 0, [3]int{0, 1, 2}))
	require.NoError(t, MoveThreeStools(r, -3, [3]int{0, 1, 2}))
	assert.Empty(t, r.moves)
}

func TestMoveFourStoolsSmallTours(t *testing.T) {
	tests := []struct {
		name    string
		cheeses int
		want    []domain.Move
	}{
		{name: "no cheeses", cheeses: 0, want: nil},
		{name: "one cheese", cheeses: 1, want: []domain.Move{{Source: 0, Destination: 3}}},
		{
			name:    "two cheeses",
			cheeses: 2,
			want: []domain.Move{
				{Source: 0, Destination: 1},
				{Source: 0, Destination: 3},
				{Source: 1, Destination: 3},
			},
		},
		{
			name:    "three cheeses",
			cheeses: 3,
			want: []domain.Move{
				{Source: 0, Destination: 1},
				{Source: 0, Destination: 2},
				{Source: 0, Destination: 3},
				{Source: 2, Destination: 3},
				{Source: 1, Destination: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			require.NoError(t, New(nil).Tour(r, tt.cheeses))
			assert.Equal(t, tt.want, r.moves)
		})
	}
}

func TestTourMatchesPlannerAndEndsOnLastStool(t *testing.T) {
	s := New(NewPlanner())

	for n := 1; n <= 15; n++ {
		m := domain.NewModel(4)
		require.NoError(t, m.Fill(n))

		require.NoError(t, s.Tour(m, n))

		assert.Equal(t, s.Planner().MinMoves(n), uint64(m.NumberOfMoves()), "cheeses=%d", n)
		assert.Empty(t, m.Stool(0))
		assert.Empty(t, m.Stool(1))
		assert.Empty(t, m.Stool(2))
		assert.Equal(t, descending(n), m.Stool(3))

		replayed, err := m.MoveSeq().GenerateModel(4, n)
		require.NoError(t, err)
		assert.True(t, m.Equal(replayed), "cheeses=%d", n)
	}
}

func TestMoveFourStoolsHonoursStoolRoles(t *testing.T) {
	m := domain.NewModel(4)
	require.NoError(t, m.Fill(6))
	require.NoError(t, m.Move(0, 2))
	require.NoError(t, m.Move(2, 0))

	// Move everything to stool 1 through 3 and 2.
	require.NoError(t, New(nil).MoveFourStools(m, 6, [4]int{0, 1, 3, 2}))

	assert.Equal(t, descending(6), m.Stool(1))
	assert.Equal(t, 2+17, m.NumberOfMoves())
}

func TestMoveFourStoolsPropagatesMoverError(t *testing.T) {
	boom := errors.New("rejected")
	r := &recorder{failAt: 3, err: boom}

	err := New(nil).Tour(r, 5)

	require.ErrorIs(t, err, boom)
	assert.Len(t, r.moves, 3)
}

func TestTourOnTooFewStoolsReportsIllegalMove(t *testing.T) {
	m := domain.NewModel(3)
	require.NoError(t, m.Fill(2))

	err := New(nil).Tour(m, 2)
	require.ErrorIs(t, err, domain.ErrIllegalMove)
}

func descending(n int) []domain.Cheese {
	cheeses := make([]domain.Cheese, 0, n)
	for size := n; size > 0; size-- {
		cheeses = append(cheeses, domain.NewCheese(size))
	}

	return cheeses
}
