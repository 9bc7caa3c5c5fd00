package domain

import (
	"fmt"
	"strings"
	"time"
)

type TourID string

// Tour is a solved puzzle instance kept in the history.
type Tour struct {
	ID        TourID
	Cheeses   int
	Stools    int
	Split     int
	Moves     MoveSequence
	CreatedAt time.Time
}

func (t Tour) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if t.Stools <= 0 {
		return fmt.Errorf("stool count must be positive, got %d", t.Stools)
	}
	if t.Cheeses < 0 {
		return fmt.Errorf("cheese count must not be negative, got %d", t.Cheeses)
	}
	for i, move := range t.Moves.moves {
		if move.Source < 0 || move.Source >= t.Stools || move.Destination < 0 || move.Destination >= t.Stools {
			return fmt.Errorf("move %d (%s) references a stool outside 0..%d", i, move, t.Stools-1)
		}
	}

	return nil
}

// PlanEntry is the optimal first split and move count for a number of cheeses.
type PlanEntry struct {
	Cheeses int    `json:"cheeses"`
	Split   int    `json:"split"`
	Moves   uint64 `json:"moves"`
}

// Verification is the outcome of solving and replaying one tour.
type Verification struct {
	Cheeses  int    `json:"cheeses"`
	Moves    int    `json:"moves"`
	Expected uint64 `json:"expected"`
	OK       bool   `json:"ok"`
}
