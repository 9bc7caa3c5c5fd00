package toml

import (
	"fmt"
	"time"

	"github.com/bnema/toah-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Tours   []tourSchema `toml:"tours"`
}

type tourSchema struct {
	ID        string    `toml:"id"`
	Cheeses   int       `toml:"cheeses"`
	Stools    int       `toml:"stools"`
	Split     int       `toml:"split"`
	CreatedAt time.Time `toml:"created_at"`
	Moves     [][]int   `toml:"moves"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported tours schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) find(id domain.TourID) (tourSchema, bool) {
	for _, entry := range s.Tours {
		if entry.ID == string(id) {
			return entry, true
		}
	}

	return tourSchema{}, false
}

// upsert replaces the tour with the same ID in place, or appends it.
func (s *fileSchema) upsert(entry tourSchema) {
	for i := range s.Tours {
		if s.Tours[i].ID == entry.ID {
			s.Tours[i] = entry
			return
		}
	}

	s.Tours = append(s.Tours, entry)
}

func newTourSchema(tour domain.Tour) tourSchema {
	moves := make([][]int, 0, tour.Moves.Len())
	for _, move := range tour.Moves.Moves() {
		moves = append(moves, []int{move.Source, move.Destination})
	}

	return tourSchema{
		ID:        string(tour.ID),
		Cheeses:   tour.Cheeses,
		Stools:    tour.Stools,
		Split:     tour.Split,
		CreatedAt: tour.CreatedAt.UTC(),
		Moves:     moves,
	}
}

func (e tourSchema) tour() (domain.Tour, error) {
	moves := make([]domain.Move, 0, len(e.Moves))
	for i, pair := range e.Moves {
		if len(pair) != 2 {
			return domain.Tour{}, fmt.Errorf("decode tour %s: move %d has %d stools, want 2", e.ID, i, len(pair))
		}
		moves = append(moves, domain.Move{Source: pair[0], Destination: pair[1]})
	}

	return domain.Tour{
		ID:        domain.TourID(e.ID),
		Cheeses:   e.Cheeses,
		Stools:    e.Stools,
		Split:     e.Split,
		Moves:     domain.NewMoveSequence(moves...),
		CreatedAt: e.CreatedAt.UTC(),
	}, nil
}
