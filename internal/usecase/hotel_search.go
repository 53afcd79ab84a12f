package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// HotelSearchUseCase defines the hotel search operation.
type HotelSearchUseCase interface {
	// Search returns one page of hotels matching the query.
	// Storage failures are returned as a CollaboratorError and no partial page is produced.
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResponse, error)
}

type hotelSearchUseCase struct {
	repo    domain.HotelRepository
	timeout time.Duration
	log     *logger.Logger
}

// NewHotelSearchUseCase creates a HotelSearchUseCase over the given repository.
// If config is nil, default values are used.
func NewHotelSearchUseCase(repo domain.HotelRepository, config *Config, log *logger.Logger) HotelSearchUseCase {
	cfg := withDefaults(config)
	if log == nil {
		log = logger.Nop()
	}
	return &hotelSearchUseCase{
		repo:    repo,
		timeout: cfg.SearchTimeout,
		log:     log.WithComponent("search"),
	}
}

// Search builds the predicate and page window, then counts and fetches concurrently.
func (uc *hotelSearchUseCase) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResponse, error) {
	q.SetDefaults()

	predicate := domain.BuildPredicate(q.Filters)
	window := domain.Paginate(q.Page, 0)
	opts := domain.FindOptions{
		Sort:  q.Sort.Spec(),
		Skip:  window.Skip,
		Limit: window.Limit,
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var (
		total  int64
		hotels []domain.Hotel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.repo.Count(gctx, predicate)
		total = n
		return err
	})
	g.Go(func() error {
		found, err := uc.repo.Find(gctx, predicate, opts)
		hotels = found
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx, uc.log).Error().
			Err(err).
			Str("component", "search").
			Int("constraints", len(predicate.Constraints)).
			Int("page", q.Page).
			Msg("hotel search failed")
		return nil, domain.NewStorageError(err)
	}

	resp := domain.NewSearchResponse(hotels, total, q.Page)
	return &resp, nil
}
