package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelFillFirstStool(t *testing.T) {
	m := NewModel(4)
	require.NoError(t, m.Fill(5))

	assert.Equal(t, 4, m.NumberOfStools())
	assert.Equal(t, 5, m.NumberOfCheeses())
	assert.Equal(t, 0, m.NumberOfMoves())
	assert.Equal(t, []Cheese{{5}, {4}, {3}, {2}, {1}}, m.Stool(0))

	top, ok := m.TopCheese(0)
	require.True(t, ok)
	assert.Equal(t, 1, top.Size)

	c, ok := m.CheeseAt(0, 3)
	require.True(t, ok)
	assert.Equal(t, 2, c.Size)
}

func TestModelFillTwiceFails(t *testing.T) {
	m := NewModel(4)
	require.NoError(t, m.Fill(3))

	err := m.Fill(2)
	require.ErrorIs(t, err, ErrAlreadyFilled)
	assert.Len(t, m.Stool(0), 3)
}

func TestModelFillRejectsStoolsWithCheeses(t *testing.T) {
	m := NewModel(4)
	require.NoError(t, m.Add(NewCheese(5), 2))

	err := m.Fill(3)
	require.ErrorIs(t, err, ErrAlreadyFilled)
	assert.Empty(t, m.Stool(0))
	assert.Equal(t, []Cheese{NewCheese(5)}, m.Stool(2))
	assert.Equal(t, 0, m.NumberOfCheeses())
}

func TestModelMoveRecordsHistory(t *testing.T) {
	m := NewModel(4)
	require.NoError(t, m.Fill(3))

	require.NoError(t, m.Move(0, 1))
	require.NoError(t, m.Move(0, 2))
	require.NoError(t, m.Move(1, 2))

	assert.Equal(t, 3, m.NumberOfMoves())
	assert.True(t, m.MoveSeq().Equal(NewMoveSequence(Move{0, 1}, Move{0, 2}, Move{1, 2})))
	assert.Equal(t, []Cheese{{3}}, m.Stool(0))
	assert.Equal(t, []Cheese{{2}, {1}}, m.Stool(2))
}

func TestModelIllegalMovesLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name        string
		source      int
		destination int
	}{
		{name: "bigger on smaller", source: 0, destination: 1},
		{name: "same stool", source: 1, destination: 1},
		{name: "empty source", source: 2, destination: 3},
		{name: "destination out of range", source: 1, destination: 4},
		{name: "source out of range", source: -1, destination: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(4)
			require.NoError(t, m.Fill(3))
			require.NoError(t, m.Move(0, 1))

			before := m.String()
			err := m.Move(tt.source, tt.destination)

			require.ErrorIs(t, err, ErrIllegalMove)
			assert.Equal(t, before, m.String())
			assert.Equal(t, []Cheese{{3}, {2}}, m.Stool(0))
			assert.Equal(t, []Cheese{{1}}, m.Stool(1))
			assert.Equal(t, 1, m.NumberOfMoves())
		})
	}
}

func TestModelEqualComparesConfigurations(t *testing.T) {
	m1 := NewModel(4)
	require.NoError(t, m1.Fill(7))
	require.NoError(t, m1.Move(0, 1))
	require.NoError(t, m1.Move(0, 2))
	require.NoError(t, m1.Move(1, 2))

	m2 := NewModel(4)
	require.NoError(t, m2.Fill(7))
	require.NoError(t, m2.Move(0, 3))
	require.NoError(t, m2.Move(0, 2))
	require.NoError(t, m2.Move(3, 2))

	assert.True(t, m1.Equal(m2))
	assert.False(t, m1.MoveSeq().Equal(m2.MoveSeq()))

	require.NoError(t, m2.Move(2, 1))
	assert.False(t, m1.Equal(m2))
}

func TestModelCheeseLocation(t *testing.T) {
	m := NewModel(4)
	require.NoError(t, m.Fill(4))
	require.NoError(t, m.Move(0, 3))

	stool, err := m.CheeseLocation(NewCheese(1))
	require.NoError(t, err)
	assert.Equal(t, 3, stool)

	stool, err = m.CheeseLocation(NewCheese(4))
	require.NoError(t, err)
	assert.Equal(t, 0, stool)

	_, err = m.CheeseLocation(NewCheese(9))
	require.ErrorIs(t, err, ErrCheeseNotFound)
}

func TestModelString(t *testing.T) {
	m := NewModel(3)
	require.NoError(t, m.Fill(2))
	require.NoError(t, m.Move(0, 2))

	want := strings.Join([]string{
		strings.Repeat("     "+"  ", 3),
		" --- " + "  " + "     " + "  " + "  -  " + "  ",
		strings.Repeat("====="+"  ", 3),
	}, "\n")

	assert.Equal(t, want, m.String())
}

func TestModelStringEmpty(t *testing.T) {
	m := NewModel(2)
	assert.Equal(t, "=  =  ", m.String())
}

func TestMoveSequenceGenerateModel(t *testing.T) {
	seq := NewMoveSequence(Move{0, 1}, Move{0, 3}, Move{1, 3})

	got, err := seq.GenerateModel(4, 2)
	require.NoError(t, err)

	want := NewModel(4)
	require.NoError(t, want.Fill(2))
	require.NoError(t, want.Move(0, 2))
	require.NoError(t, want.Move(0, 3))
	require.NoError(t, want.Move(2, 3))

	assert.True(t, want.Equal(got))
	assert.True(t, seq.Equal(got.MoveSeq()))
}

func TestMoveSequenceGenerateModelWithoutMoves(t *testing.T) {
	want := NewModel(2)
	require.NoError(t, want.Fill(2))

	got, err := NewMoveSequence().GenerateModel(2, 2)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestMoveSequenceGenerateModelRejectsIllegalMove(t *testing.T) {
	_, err := NewMoveSequence(Move{0, 1}, Move{0, 1}).GenerateModel(4, 3)
	require.ErrorIs(t, err, ErrIllegalMove)
	assert.Contains(t, err.Error(), "apply move 1 (0->1)")
}

func TestMoveSequenceGetAndJSON(t *testing.T) {
	var seq MoveSequence
	seq.Add(1, 2)

	move, ok := seq.Get(0)
	require.True(t, ok)
	assert.Equal(t, Move{Source: 1, Destination: 2}, move)

	_, ok = seq.Get(1)
	assert.False(t, ok)

	data, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"source":1,"destination":2}]`, string(data))

	var decoded MoveSequence
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, seq.Equal(decoded))
}

func TestTourValidate(t *testing.T) {
	valid := Tour{ID: "t-1", Cheeses: 2, Stools: 4, Split: 1, Moves: NewMoveSequence(Move{0, 1}, Move{0, 3}, Move{1, 3})}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		tour Tour
		want string
	}{
		{name: "missing id", tour: Tour{Stools: 4}, want: "id is required"},
		{name: "no stools", tour: Tour{ID: "t-1"}, want: "stool count must be positive"},
		{name: "negative cheeses", tour: Tour{ID: "t-1", Stools: 4, Cheeses: -1}, want: "must not be negative"},
		{name: "move off board", tour: Tour{ID: "t-1", Stools: 4, Moves: NewMoveSequence(Move{0, 4})}, want: "outside 0..3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tour.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
