// Package http provides the HTTP handler layer for the hotel booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

// Search query parameter names.
const (
	ParamDestination = "destination"
	ParamAdultCount  = "adultCount"
	ParamChildCount  = "childCount"
	ParamFacilities  = "facilities"
	ParamTypes       = "types"
	ParamStars       = "stars"
	ParamMaxPrice    = "maxPrice"
	ParamSortOption  = "sortOption"
	ParamPage        = "page"
	ParamLimit       = "limit"
)

// Hotel form field names. starRating is also accepted as rating.
const (
	FieldImageFiles   = "imageFiles"
	FieldHomeImageURL = "homeImageUrl"
	FieldImageURLs    = "imageUrls"
	fieldRatingAlias  = "rating"
)

// ParseSearchQuery converts raw search parameters into a typed query.
// List parameters accept repeated keys and comma-separated values; items are
// trimmed, empties dropped and duplicates removed. Numeric filters that fail to
// parse are rejected with a validation error, all bad stars sharing one stars detail.
// A missing or non-numeric page is page 1.
func ParseSearchQuery(values url.Values) (domain.SearchQuery, error) {
	var errs domain.ValidationErrors

	f := domain.FilterCriteria{
		Destination:        strings.TrimSpace(values.Get(ParamDestination)),
		MinAdultCount:      optionalCount(values, ParamAdultCount, &errs),
		MinChildCount:      optionalCount(values, ParamChildCount, &errs),
		RequiredFacilities: listParam(values, ParamFacilities),
		AllowedTypes:       listParam(values, ParamTypes),
		MaxPricePerNight:   optionalPrice(values, ParamMaxPrice, &errs),
	}

	for _, s := range listParam(values, ParamStars) {
		star, err := strconv.Atoi(s)
		if err != nil {
			errs.Add(ParamStars, fmt.Sprintf("stars must be integers, got %q", s))
			continue
		}
		f.AllowedStarRatings = append(f.AllowedStarRatings, star)
	}

	if err := errs.Err(); err != nil {
		return domain.SearchQuery{}, err
	}

	q := domain.SearchQuery{
		Filters: f,
		Sort:    domain.ParseSortOption(strings.TrimSpace(values.Get(ParamSortOption))),
		Page:    intOr(values.Get(ParamPage), domain.DefaultPage),
	}
	q.SetDefaults()
	return q, nil
}

// listParam collects a list parameter from repeated keys and comma-separated values.
func listParam(values url.Values, key string) []string {
	raw := values[key]
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, v := range raw {
		for _, item := range domain.SplitList(v) {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

func optionalCount(values url.Values, key string, errs *domain.ValidationErrors) *int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(key, key+" must be an integer")
		return nil
	}
	if n < 0 {
		errs.Add(key, key+" must not be negative")
		return nil
	}
	return &n
}

func optionalPrice(values url.Values, key string, errs *domain.ValidationErrors) *float64 {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs.Add(key, key+" must be a number")
		return nil
	}
	if v < 0 {
		errs.Add(key, key+" must not be negative")
		return nil
	}
	return &v
}

// intOr parses raw as an integer, returning fallback when it is empty or malformed.
func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

// hotelForm is a parsed admin hotel form: text fields plus uploaded images.
type hotelForm struct {
	values    url.Values
	homeImage *domain.Image
	images    []domain.Image
}

// readHotelForm reads a multipart or url-encoded hotel form.
// At most usecase.MaxHotelImages gallery files and one cover file are accepted,
// each no larger than maxImageBytes.
func readHotelForm(c echo.Context, maxImageBytes int64) (*hotelForm, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		values, err := c.FormParams()
		if err != nil {
			return nil, domain.WrapInvalidRequest("unreadable form: %v", err)
		}
		return &hotelForm{values: values}, nil
	}

	mf, err := c.MultipartForm()
	if err != nil {
		return nil, domain.WrapInvalidRequest("unreadable multipart form: %v", err)
	}

	form := &hotelForm{values: url.Values(mf.Value)}
	var errs domain.ValidationErrors

	gallery := mf.File[FieldImageFiles]
	if len(gallery) > usecase.MaxHotelImages {
		errs.Add(FieldImageFiles, fmt.Sprintf("At most %d images are allowed", usecase.MaxHotelImages))
	}
	covers := mf.File[FieldHomeImageURL]
	if len(covers) > 1 {
		errs.Add(FieldHomeImageURL, "Only one home image is allowed")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	for _, fh := range gallery {
		img, err := readImage(fh, FieldImageFiles, maxImageBytes)
		if err != nil {
			return nil, err
		}
		form.images = append(form.images, img)
	}
	if len(covers) == 1 {
		img, err := readImage(covers[0], FieldHomeImageURL, maxImageBytes)
		if err != nil {
			return nil, err
		}
		form.homeImage = &img
	}

	return form, nil
}

func readImage(fh *multipart.FileHeader, field string, maxBytes int64) (domain.Image, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return domain.Image{}, domain.NewValidationError(field,
			fmt.Sprintf("%s exceeds the %d byte limit", fh.Filename, maxBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Image{}, domain.WrapInvalidRequest("open %s: %v", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Image{}, domain.WrapInvalidRequest("read %s: %v", fh.Filename, err)
	}

	return domain.Image{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// text returns the trimmed value of the first of keys that is present and non-empty.
func (f *hotelForm) text(keys ...string) (string, bool) {
	for _, k := range keys {
		if v := strings.TrimSpace(f.values.Get(k)); v != "" {
			return v, true
		}
	}
	return "", false
}

func (f *hotelForm) list(key string) ([]string, bool) {
	if _, ok := f.values[key]; !ok {
		return nil, false
	}
	items := listParam(f.values, key)
	if items == nil {
		items = []string{}
	}
	return items, true
}

// intField parses the first present key as an integer, recording message on failure.
func (f *hotelForm) intField(errs *domain.ValidationErrors, message string, keys ...string) *int {
	raw, ok := f.text(keys...)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(keys[0], message)
		return nil
	}
	return &n
}

func (f *hotelForm) floatField(errs *domain.ValidationErrors, key, message string) *float64 {
	raw, ok := f.text(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(key, message)
		return nil
	}
	return &v
}

// update extracts every provided non-empty field as a partial update.
// Numeric fields that are present but malformed are reported as validation errors.
func (f *hotelForm) update() (domain.HotelUpdate, error) {
	var errs domain.ValidationErrors
	var u domain.HotelUpdate

	str := func(dst **string, keys ...string) {
		if v, ok := f.text(keys...); ok {
			*dst = &v
		}
	}
	str(&u.Name, domain.FieldName)
	str(&u.HomeDescription, "homeDescription")
	str(&u.Address, "address")
	str(&u.City, domain.FieldCity)
	str(&u.State, "state")
	str(&u.Country, domain.FieldCountry)
	str(&u.Location, "location")
	str(&u.Description, "description")

	if types, ok := f.list(domain.FieldType); ok && len(types) > 0 {
		u.Type = types
	}
	if facilities, ok := f.list(domain.FieldFacilities); ok && len(facilities) > 0 {
		u.Facilities = facilities
	}
	if urls, ok := f.list(FieldImageURLs); ok {
		u.ImageURLs = urls
	}
	// A cover uploaded as a file takes precedence over a text URL
	if f.homeImage == nil {
		str(&u.HomeImageURL, FieldHomeImageURL)
	}

	u.StarRating = f.intField(&errs, "Rating must be between 1 and 5", domain.FieldStarRating, fieldRatingAlias)
	u.AdultCount = f.intField(&errs, "Adult count must be an integer", domain.FieldAdultCount)
	u.ChildCount = f.intField(&errs, "Child count must be an integer", domain.FieldChildCount)
	u.PricePerNight = f.floatField(&errs, domain.FieldPricePerNight, "Price per night must be a number")

	return u, errs.Err()
}

// hotel builds a new hotel from the form. Absent fields stay zero so the
// use case reports them as missing.
func (f *hotelForm) hotel() (domain.Hotel, error) {
	u, err := f.update()
	if err != nil {
		return domain.Hotel{}, err
	}
	var h domain.Hotel
	u.ApplyTo(&h)
	return h, nil
}

// createCommand converts the form into a hotel creation command.
func (f *hotelForm) createCommand() (usecase.CreateHotelCommand, error) {
	h, err := f.hotel()
	if err != nil {
		return usecase.CreateHotelCommand{}, err
	}
	return usecase.CreateHotelCommand{
		Hotel:     h,
		HomeImage: f.homeImage,
		Images:    f.images,
	}, nil
}

// updateCommand converts the form into a partial update command.
func (f *hotelForm) updateCommand() (usecase.UpdateHotelCommand, error) {
	u, err := f.update()
	if err != nil {
		return usecase.UpdateHotelCommand{}, err
	}
	return usecase.UpdateHotelCommand{
		Update:    u,
		HomeImage: f.homeImage,
		Images:    f.images,
	}, nil
}
