// Package memory provides in-memory repositories for development and tests.
// Hotels are evaluated with domain.Predicate.Matches, so a search behaves
// the same as against the document store for every supported filter.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

// newID returns an identifier in the same hex format the document store uses.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// checkID rejects identifiers the document store could not address.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

// HotelRepository keeps hotels in insertion order.
type HotelRepository struct {
	mu     sync.RWMutex
	hotels []domain.Hotel
}

// NewHotelRepository creates a repository seeded with hotels. Seeds without an ID get one.
func NewHotelRepository(seed ...domain.Hotel) *HotelRepository {
	r := &HotelRepository{hotels: make([]domain.Hotel, 0, len(seed))}
	for _, h := range seed {
		if h.ID == "" {
			h.ID = newID()
		}
		r.hotels = append(r.hotels, cloneHotel(h))
	}
	return r
}

func (r *HotelRepository) Count(ctx context.Context, p domain.Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for i := range r.hotels {
		if p.Matches(&r.hotels[i]) {
			n++
		}
	}
	return n, nil
}

func (r *HotelRepository) Find(ctx context.Context, p domain.Predicate, opts domain.FindOptions) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := make([]domain.Hotel, 0)
	for i := range r.hotels {
		if p.Matches(&r.hotels[i]) {
			matched = append(matched, cloneHotel(r.hotels[i]))
		}
	}
	r.mu.RUnlock()

	if !opts.Sort.IsZero() {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(&matched[i], &matched[j], opts.Sort)
		})
	}

	return window(matched, opts.Skip, opts.Limit), nil
}

func (r *HotelRepository) List(ctx context.Context, limit int64) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		out = append(out, cloneHotel(h))
	}
	return window(out, 0, limit), nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrHotelNotFound
	}
	h := cloneHotel(r.hotels[i])
	return &h, nil
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	h.ID = newID()
	r.hotels = append(r.hotels, cloneHotel(*h))
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, id string, u domain.HotelUpdate, lastUpdated time.Time) (*domain.Hotel, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrHotelNotFound
	}
	h := cloneHotel(r.hotels[i])
	u.ApplyTo(&h)
	h.LastUpdated = lastUpdated
	r.hotels[i] = h

	out := cloneHotel(h)
	return &out, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrHotelNotFound
	}
	r.hotels = append(r.hotels[:i], r.hotels[i+1:]...)
	return nil
}

// indexOf must be called with the lock held.
func (r *HotelRepository) indexOf(id string) int {
	for i := range r.hotels {
		if r.hotels[i].ID == id {
			return i
		}
	}
	return -1
}

func less(a, b *domain.Hotel, spec domain.SortSpec) bool {
	var x, y float64
	switch spec.Field {
	case domain.FieldStarRating:
		x, y = float64(a.StarRating), float64(b.StarRating)
	case domain.FieldPricePerNight:
		x, y = a.PricePerNight, b.PricePerNight
	default:
		return false
	}
	if spec.Desc {
		return x > y
	}
	return x < y
}

func window[T any](items []T, skip, limit int64) []T {
	if skip < 0 || skip >= int64(len(items)) {
		return items[:0]
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

func cloneHotel(h domain.Hotel) domain.Hotel {
	h.Type = cloneStrings(h.Type)
	h.Facilities = cloneStrings(h.Facilities)
	h.ImageURLs = cloneStrings(h.ImageURLs)
	return h
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append(make([]string, 0, len(ss)), ss...)
}

// BookingRepository keeps bookings in insertion order.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// NewBookingRepository creates an empty repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.bookings)), nil
}

func (r *BookingRepository) List(ctx context.Context, skip, limit int64) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append(make([]domain.Booking, 0, len(r.bookings)), r.bookings...)
	return window(out, skip, limit), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = newID()
	r.bookings = append(r.bookings, *b)
	return nil
}

// UserRepository indexes accounts by id and email.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewUserRepository creates an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return domain.ErrUserExists
	}
	u.ID = newID()
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

var (
	_ domain.HotelRepository   = (*HotelRepository)(nil)
	_ domain.BookingRepository = (*BookingRepository)(nil)
	_ domain.UserRepository    = (*UserRepository)(nil)
)
