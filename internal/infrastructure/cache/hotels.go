// Package cache provides a read-through cache in front of the hotel repository.
package cache

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// Defaults used when Config fields are zero.
const (
	DefaultTTL     = 5 * time.Minute
	DefaultMaxSize = 1000
)

// Config controls the cache size and entry lifetime.
type Config struct {
	TTL     time.Duration
	MaxSize int64
}

// HotelRepository decorates a domain.HotelRepository, caching single-hotel reads.
// Searches and listings always reach the inner repository.
// Entries are dropped when the hotel is updated or deleted through the decorator.
type HotelRepository struct {
	inner domain.HotelRepository
	cache *ccache.Cache[*domain.Hotel]
	ttl   time.Duration
	log   *logger.Logger
}

// NewHotelRepository wraps inner with a cache.
func NewHotelRepository(inner domain.HotelRepository, cfg Config, log *logger.Logger) *HotelRepository {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &HotelRepository{
		inner: inner,
		cache: ccache.New(ccache.Configure[*domain.Hotel]().MaxSize(cfg.MaxSize)),
		ttl:   cfg.TTL,
		log:   log.WithComponent("hotel-cache"),
	}
}

func (r *HotelRepository) Count(ctx context.Context, p domain.Predicate) (int64, error) {
	return r.inner.Count(ctx, p)
}

func (r *HotelRepository) Find(ctx context.Context, p domain.Predicate, opts domain.FindOptions) ([]domain.Hotel, error) {
	return r.inner.Find(ctx, p, opts)
}

func (r *HotelRepository) List(ctx context.Context, limit int64) ([]domain.Hotel, error) {
	return r.inner.List(ctx, limit)
}

// GetByID serves fresh entries from the cache and loads misses from the inner repository.
// Errors are not cached.
func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	if item := r.cache.Get(id); item != nil && !item.Expired() {
		r.log.Debug().Str("hotel_id", id).Msg("cache hit")
		return copyHotel(item.Value()), nil
	}

	h, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(id, copyHotel(h), r.ttl)
	return h, nil
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.inner.Create(ctx, h)
}

func (r *HotelRepository) Update(ctx context.Context, id string, u domain.HotelUpdate, lastUpdated time.Time) (*domain.Hotel, error) {
	r.cache.Delete(id)
	h, err := r.inner.Update(ctx, id, u, lastUpdated)
	if err != nil {
		return nil, err
	}
	r.cache.Set(id, copyHotel(h), r.ttl)
	return h, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return r.inner.Delete(ctx, id)
}

// Len returns the number of cached hotels.
func (r *HotelRepository) Len() int {
	return r.cache.ItemCount()
}

// Stop releases the cache's background worker.
func (r *HotelRepository) Stop() {
	r.cache.Stop()
}

func copyHotel(h *domain.Hotel) *domain.Hotel {
	c := *h
	c.Type = cloneStrings(h.Type)
	c.Facilities = cloneStrings(h.Facilities)
	c.ImageURLs = cloneStrings(h.ImageURLs)
	return &c
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append(make([]string, 0, len(ss)), ss...)
}

var _ domain.HotelRepository = (*HotelRepository)(nil)
