package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
)

// HotelAdminUseCase defines hotel catalogue management.
type HotelAdminUseCase interface {
	// List returns up to limit hotels; limit <= 0 returns every hotel.
	List(ctx context.Context, limit int) ([]domain.Hotel, error)
	Get(ctx context.Context, id string) (*domain.Hotel, error)
	Create(ctx context.Context, cmd CreateHotelCommand) (*domain.Hotel, error)
	Update(ctx context.Context, id string, cmd UpdateHotelCommand) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error
}

// CreateHotelCommand carries a new hotel and the images to relay for it.
type CreateHotelCommand struct {
	Hotel     domain.Hotel
	HomeImage *domain.Image
	Images    []domain.Image
}

// UpdateHotelCommand carries a partial update and images to append to the gallery.
type UpdateHotelCommand struct {
	Update    domain.HotelUpdate
	HomeImage *domain.Image
	Images    []domain.Image
}

type hotelAdminUseCase struct {
	repo         domain.HotelRepository
	uploader     domain.ImageUploader
	clock        timeutil.Clock
	relayTimeout time.Duration
	log          *logger.Logger
}

// NewHotelAdminUseCase creates a HotelAdminUseCase.
func NewHotelAdminUseCase(repo domain.HotelRepository, uploader domain.ImageUploader, clock timeutil.Clock, config *Config, log *logger.Logger) HotelAdminUseCase {
	cfg := withDefaults(config)
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &hotelAdminUseCase{
		repo:         repo,
		uploader:     uploader,
		clock:        clock,
		relayTimeout: cfg.RelayTimeout,
		log:          log.WithComponent("hotels"),
	}
}

func (uc *hotelAdminUseCase) List(ctx context.Context, limit int) ([]domain.Hotel, error) {
	if limit < 0 {
		limit = 0
	}
	hotels, err := uc.repo.List(ctx, int64(limit))
	if err != nil {
		return nil, uc.storageFailure(ctx, "list hotels", err)
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return hotels, nil
}

func (uc *hotelAdminUseCase) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.storageFailure(ctx, "get hotel", err)
	}
	return h, nil
}

func (uc *hotelAdminUseCase) Create(ctx context.Context, cmd CreateHotelCommand) (*domain.Hotel, error) {
	h := cmd.Hotel
	if err := validateNewHotel(&h, len(cmd.Images)); err != nil {
		return nil, err
	}

	gallery, home, err := uc.uploadAll(ctx, cmd.Images, cmd.HomeImage)
	if err != nil {
		return nil, err
	}

	h.ID = ""
	h.ImageURLs = gallery
	if home != "" {
		h.HomeImageURL = home
	}
	h.LastUpdated = uc.clock.Now()

	if err := uc.repo.Create(ctx, &h); err != nil {
		return nil, uc.storageFailure(ctx, "create hotel", err)
	}

	uc.log.Info().Str("hotel_id", h.ID).Int("images", len(gallery)).Msg("hotel created")
	return &h, nil
}

func (uc *hotelAdminUseCase) Update(ctx context.Context, id string, cmd UpdateHotelCommand) (*domain.Hotel, error) {
	u := cmd.Update
	if err := validateHotelUpdate(&u, len(cmd.Images)); err != nil {
		return nil, err
	}

	// New gallery images extend the URLs sent by the client, or the stored gallery when none were sent.
	if len(cmd.Images) > 0 && u.ImageURLs == nil {
		existing, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, uc.storageFailure(ctx, "get hotel", err)
		}
		u.ImageURLs = existing.ImageURLs
	}

	gallery, home, err := uc.uploadAll(ctx, cmd.Images, cmd.HomeImage)
	if err != nil {
		return nil, err
	}
	if len(gallery) > 0 {
		u.ImageURLs = append(append([]string{}, u.ImageURLs...), gallery...)
	}
	if home != "" {
		u.HomeImageURL = &home
	}

	h, err := uc.repo.Update(ctx, id, u, uc.clock.Now())
	if err != nil {
		return nil, uc.storageFailure(ctx, "update hotel", err)
	}
	return h, nil
}

func (uc *hotelAdminUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.storageFailure(ctx, "delete hotel", err)
	}
	uc.log.Info().Str("hotel_id", id).Msg("hotel deleted")
	return nil
}

// uploadAll relays the gallery and the optional home image concurrently.
// Gallery URLs keep the order of images. The first failure cancels the remaining uploads.
func (uc *hotelAdminUseCase) uploadAll(ctx context.Context, images []domain.Image, homeImage *domain.Image) ([]string, string, error) {
	if len(images) == 0 && homeImage == nil {
		return []string{}, "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.relayTimeout)
	defer cancel()

	gallery := make([]string, len(images))
	var home string

	g, gctx := errgroup.WithContext(ctx)
	for i := range images {
		img := images[i]
		g.Go(func() error {
			url, err := uc.uploader.Upload(gctx, img)
			if err != nil {
				return fmt.Errorf("upload %q: %w", img.Filename, err)
			}
			gallery[i] = url
			return nil
		})
	}
	if homeImage != nil {
		g.Go(func() error {
			url, err := uc.uploader.Upload(gctx, *homeImage)
			if err != nil {
				return fmt.Errorf("upload home image %q: %w", homeImage.Filename, err)
			}
			home = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, "", relayFailure(ctx, uc.log, "upload images", err, domain.NewUploadError)
	}
	return gallery, home, nil
}

func (uc *hotelAdminUseCase) storageFailure(ctx context.Context, op string, err error) error {
	return storageFailure(ctx, uc.log, op, err)
}

func validateNewHotel(h *domain.Hotel, images int) error {
	var errs domain.ValidationErrors

	required := []struct {
		field, value, message string
	}{
		{"name", h.Name, "Name is required"},
		{"address", h.Address, "Address is required"},
		{"city", h.City, "City is required"},
		{"state", h.State, "State is required"},
		{"location", h.Location, "Location is required"},
		{"country", h.Country, "Country is required"},
		{"description", h.Description, "Description is required"},
	}
	for _, r := range required {
		if r.value == "" {
			errs.Add(r.field, r.message)
		}
	}

	if len(h.Type) == 0 {
		errs.Add("type", "Hotel type is required")
	}
	if len(h.Facilities) == 0 {
		errs.Add("facilities", "Facilities are required")
	}
	if h.StarRating < 1 || h.StarRating > 5 {
		errs.Add("starRating", "Star rating must be between 1 and 5")
	}
	if h.PricePerNight <= 0 {
		errs.Add("pricePerNight", "Price per night is required and must be a number")
	}
	if h.AdultCount < 0 {
		errs.Add("adultCount", "Adult count must not be negative")
	}
	if h.ChildCount < 0 {
		errs.Add("childCount", "Child count must not be negative")
	}
	if images > MaxHotelImages {
		errs.Add("imageFiles", fmt.Sprintf("At most %d images are allowed", MaxHotelImages))
	}

	return errs.Err()
}

func validateHotelUpdate(u *domain.HotelUpdate, images int) error {
	var errs domain.ValidationErrors

	if u.IsEmpty() && images == 0 {
		errs.Add("body", "No fields to update")
	}

	optional := []struct {
		field string
		value *string
	}{
		{"name", u.Name},
		{"address", u.Address},
		{"city", u.City},
		{"state", u.State},
		{"location", u.Location},
		{"country", u.Country},
		{"description", u.Description},
	}
	for _, o := range optional {
		if o.value != nil && *o.value == "" {
			errs.Add(o.field, fmt.Sprintf("%s cannot be empty", o.field))
		}
	}

	if u.Type != nil && len(u.Type) == 0 {
		errs.Add("type", "Hotel type cannot be empty")
	}
	if u.StarRating != nil && (*u.StarRating < 1 || *u.StarRating > 5) {
		errs.Add("starRating", "Star rating must be between 1 and 5")
	}
	if u.PricePerNight != nil && *u.PricePerNight <= 0 {
		errs.Add("pricePerNight", "Price per night must be a positive number")
	}
	if u.AdultCount != nil && *u.AdultCount < 0 {
		errs.Add("adultCount", "Adult count must not be negative")
	}
	if u.ChildCount != nil && *u.ChildCount < 0 {
		errs.Add("childCount", "Child count must not be negative")
	}
	if images > MaxHotelImages {
		errs.Add("imageFiles", fmt.Sprintf("At most %d images are allowed", MaxHotelImages))
	}

	return errs.Err()
}
