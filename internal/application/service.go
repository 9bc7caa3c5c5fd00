package application

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/bnema/toah-cli/internal/domain"
	"github.com/bnema/toah-cli/internal/ports"
	"github.com/bnema/toah-cli/internal/solver"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	TourStools = 4
	MaxCheeses = 64
)

var (
	ErrInvalidCheeseCount = errors.New("invalid cheese count")
	ErrTourMismatch       = errors.New("tour does not reach the expected configuration")
	errNotConfigured      = errors.New("tour repository not configured")
)

type Service struct {
	repo  ports.TourRepository
	clock ports.Clock
	log   zerolog.Logger
	newID func() string
}

func NewService(repo ports.TourRepository, clock ports.Clock, logger zerolog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:  repo,
		clock: clock,
		log:   logger,
		newID: uuid.NewString,
	}
}

func (s *Service) Solve(ctx context.Context, cmd SolveCommand) (SolveResult, error) {
	if err := validateCheeses(cmd.Cheeses); err != nil {
		return SolveResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return SolveResult{}, err
	}

	planner := solver.NewPlanner()
	model, err := runTour(planner, cmd.Cheeses)
	if err != nil {
		return SolveResult{}, err
	}
	if err := checkTour(model, planner, cmd.Cheeses); err != nil {
		return SolveResult{}, err
	}

	tour := domain.Tour{
		ID:        domain.TourID(s.newID()),
		Cheeses:   cmd.Cheeses,
		Stools:    TourStools,
		Split:     planner.BestSplit(cmd.Cheeses),
		Moves:     model.MoveSeq(),
		CreatedAt: s.clock.Now().UTC(),
	}

	s.log.Info().
		Str("tour_id", string(tour.ID)).
		Int("cheeses", tour.Cheeses).
		Int("split", tour.Split).
		Int("moves", tour.Moves.Len()).
		Msg("tour-solved")

	if cmd.Save {
		if s.repo == nil {
			return SolveResult{}, errNotConfigured
		}
		if err := s.repo.Save(ctx, tour); err != nil {
			return SolveResult{}, fmt.Errorf("save tour: %w", err)
		}
		s.log.Debug().Str("tour_id", string(tour.ID)).Msg("tour-saved")
	}

	return SolveResult{Tour: tour, Model: model}, nil
}

// Replay rebuilds the final configuration of a tour from its moves.
func (s *Service) Replay(ctx context.Context, tour domain.Tour) (*domain.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tour.Validate(); err != nil {
		return nil, fmt.Errorf("validate tour: %w", err)
	}

	model, err := tour.Moves.GenerateModel(tour.Stools, tour.Cheeses)
	if err != nil {
		return nil, fmt.Errorf("replay tour %s: %w", tour.ID, err)
	}

	return model, nil
}

func (s *Service) GetTour(ctx context.Context, id domain.TourID) (domain.Tour, error) {
	if s.repo == nil {
		return domain.Tour{}, errNotConfigured
	}

	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("get tour by id: %w", err)
	}

	return tour, nil
}

func (s *Service) ListTours(ctx context.Context) ([]domain.Tour, error) {
	if s.repo == nil {
		return nil, errNotConfigured
	}

	tours, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}

	return tours, nil
}

func (s *Service) Plan(upTo int) ([]domain.PlanEntry, error) {
	if err := validateCheeses(upTo); err != nil {
		return nil, err
	}

	return solver.NewPlanner().Plan(upTo), nil
}

// VerifyProgress is called once per finished tour with the number of tours
// verified so far. It may be called from several goroutines at once.
type VerifyProgress func(verified int)

// VerifyRange solves and replays every tour from one cheese up to upTo. Tours
// run concurrently, each on its own planner and model.
func (s *Service) VerifyRange(ctx context.Context, upTo int, progress VerifyProgress) ([]domain.Verification, error) {
	if err := validateCheeses(upTo); err != nil {
		return nil, err
	}

	results := make([]domain.Verification, upTo)
	var verified atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n := 1; n <= upTo; n++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := verifyTour(n)
			if err != nil {
				return fmt.Errorf("verify %d cheeses: %w", n, err)
			}
			results[n-1] = result

			s.log.Debug().
				Int("cheeses", n).
				Int("moves", result.Moves).
				Uint64("expected", result.Expected).
				Bool("ok", result.OK).
				Msg("tour-verified")

			done := verified.Add(1)
			if progress != nil {
				progress(int(done))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func verifyTour(n int) (domain.Verification, error) {
	planner := solver.NewPlanner()
	model, err := runTour(planner, n)
	if err != nil {
		return domain.Verification{}, err
	}

	result := domain.Verification{
		Cheeses:  n,
		Moves:    model.NumberOfMoves(),
		Expected: planner.MinMoves(n),
		OK:       true,
	}

	if err := checkTour(model, planner, n); err != nil {
		if !errors.Is(err, ErrTourMismatch) {
			return domain.Verification{}, err
		}
		result.OK = false
	}

	return result, nil
}

func runTour(planner *solver.Planner, n int) (*domain.Model, error) {
	model := domain.NewModel(TourStools)
	if err := model.Fill(n); err != nil {
		return nil, fmt.Errorf("fill model: %w", err)
	}

	if err := solver.New(planner).Tour(model, n); err != nil {
		return nil, fmt.Errorf("solve tour of %d cheeses: %w", n, err)
	}

	return model, nil
}

// checkTour confirms the model ends with every cheese on the last stool, that
// replaying its moves gives the same model, and that the move count is the
// planner's minimum.
func checkTour(model *domain.Model, planner *solver.Planner, n int) error {
	last := TourStools - 1
	if got := len(model.Stool(last)); got != n {
		return fmt.Errorf("%w: %d of %d cheeses on stool %d", ErrTourMismatch, got, n, last)
	}

	replayed, err := model.MoveSeq().GenerateModel(TourStools, n)
	if err != nil {
		return fmt.Errorf("replay moves: %w", err)
	}
	if !replayed.Equal(model) {
		return fmt.Errorf("%w: replayed moves end in a different configuration", ErrTourMismatch)
	}

	if want := planner.MinMoves(n); uint64(model.NumberOfMoves()) != want {
		return fmt.Errorf("%w: %d moves, expected %d", ErrTourMismatch, model.NumberOfMoves(), want)
	}

	return nil
}

func validateCheeses(n int) error {
	if n < 1 || n > MaxCheeses {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidCheeseCount, n, MaxCheeses)
	}

	return nil
}
