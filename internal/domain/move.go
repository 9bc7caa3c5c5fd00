package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Move relocates the top cheese of Source onto Destination.
type Move struct {
	Source      int `json:"source"`
	Destination int `json:"destination"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.Source, m.Destination)
}

// MoveSequence records moves in the order they were made. Recorded moves are
// not necessarily legal.
type MoveSequence struct {
	moves []Move
}

func NewMoveSequence(moves ...Move) MoveSequence {
	return MoveSequence{moves: slices.Clone(moves)}
}

func (s *MoveSequence) Add(source, destination int) {
	s.moves = append(s.moves, Move{Source: source, Destination: destination})
}

func (s MoveSequence) Get(i int) (Move, bool) {
	if i < 0 || i >= len(s.moves) {
		return Move{}, false
	}

	return s.moves[i], true
}

func (s MoveSequence) Len() int {
	return len(s.moves)
}

func (s MoveSequence) Moves() []Move {
	return slices.Clone(s.moves)
}

func (s MoveSequence) Equal(other MoveSequence) bool {
	return slices.Equal(s.moves, other.moves)
}

func (s MoveSequence) MarshalJSON() ([]byte, error) {
	if s.moves == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.moves)
}

func (s *MoveSequence) UnmarshalJSON(data []byte) error {
	var moves []Move
	if err := json.Unmarshal(data, &moves); err != nil {
		return err
	}

	s.moves = moves
	return nil
}

// GenerateModel builds a model with the given number of stools, fills the first
// stool with cheeses and applies every move of the sequence.
func (s MoveSequence) GenerateModel(stools, cheeses int) (*Model, error) {
	model := NewModel(stools)
	if err := model.Fill(cheeses); err != nil {
		return nil, err
	}

	for i, move := range s.moves {
		if err := model.Move(move.Source, move.Destination); err != nil {
			return nil, fmt.Errorf("apply move %d (%s): %w", i, move, err)
		}
	}

	return model, nil
}
