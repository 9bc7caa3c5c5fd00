package ports

import (
	"context"

	"github.com/bnema/toah-cli/internal/domain"
)

type TourRepository interface {
	GetByID(ctx context.Context, id domain.TourID) (domain.Tour, error)
	List(ctx context.Context) ([]domain.Tour, error)
	Save(ctx context.Context, tour domain.Tour) error
}
