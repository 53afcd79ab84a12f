package http

import (
	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

// HotelHandler handles hotel search and catalogue administration.
type HotelHandler struct {
	search        usecase.HotelSearchUseCase
	admin         usecase.HotelAdminUseCase
	maxImageBytes int64
}

// NewHotelHandler creates a HotelHandler. maxImageBytes caps each uploaded image;
// zero disables the per-file check.
func NewHotelHandler(search usecase.HotelSearchUseCase, admin usecase.HotelAdminUseCase, maxImageBytes int64) *HotelHandler {
	return &HotelHandler{
		search:        search,
		admin:         admin,
		maxImageBytes: maxImageBytes,
	}
}

// Search handles GET /api/hotels/search
//
// @Summary Search hotels
// @Description Filter, sort and paginate hotels. List parameters accept repeated keys or comma-separated values.
// @Tags hotels
// @Produce json
// @Param destination query string false "Substring of city or country (case-insensitive)"
// @Param adultCount query int false "Minimum adult capacity"
// @Param childCount query int false "Minimum child capacity"
// @Param facilities query []string false "Facilities that must all be offered" collectionFormat(multi)
// @Param types query []string false "Hotel types, any of" collectionFormat(multi)
// @Param stars query []int false "Star ratings, any of" collectionFormat(multi)
// @Param maxPrice query number false "Maximum price per night"
// @Param sortOption query string false "Sort order" Enums(starRating, pricePerNightAsc, pricePerNightDesc)
// @Param page query int false "Page number (5 hotels per page)" default(1)
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Storage failure"
// @Router /api/hotels/search [get]
func (h *HotelHandler) Search(c echo.Context) error {
	q, err := ParseSearchQuery(c.QueryParams())
	if err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), q)
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.Paged(c, result.Pagination.Total, ToSearchResponseDTO(result))
}

// List handles GET /api/hotels
//
// @Summary List hotels
// @Description Lists hotels in storage order. A missing, invalid or non-positive limit returns every hotel.
// @Tags hotels
// @Produce json
// @Param limit query int false "Maximum number of hotels"
// @Success 200 {array} HotelDTO
// @Failure 500 {object} response.ErrorDetail
// @Router /api/hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	limit := intOr(c.QueryParam(ParamLimit), 0)

	hotels, err := h.admin.List(c.Request().Context(), limit)
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.OK(c, ToHotelDTOs(hotels))
}

// Get handles GET /api/hotels/:id
//
// @Summary Get a hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} HotelDTO
// @Failure 400 {object} response.ErrorDetail "Invalid ID"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/hotels/{id} [get]
func (h *HotelHandler) Get(c echo.Context) error {
	hotel, err := h.admin.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.OK(c, ToHotelDTO(hotel))
}

// Create handles POST /api/hotels
//
// @Summary Create a hotel
// @Description Multipart form: text fields plus up to 6 imageFiles and one homeImageUrl file.
// @Tags hotels
// @Accept mpfd
// @Produce json
// @Security CookieAuth
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param country formData string true "Country"
// @Param description formData string true "Description"
// @Param type formData string true "Comma-separated types"
// @Param starRating formData int true "Star rating 1-5"
// @Param pricePerNight formData number true "Price per night"
// @Param facilities formData string true "Comma-separated facilities"
// @Param imageFiles formData file false "Gallery images"
// @Success 201 {object} HotelDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail
// @Failure 403 {object} response.ErrorDetail
// @Failure 502 {object} response.ErrorDetail "Image upload failed"
// @Router /api/hotels [post]
func (h *HotelHandler) Create(c echo.Context) error {
	form, err := readHotelForm(c, h.maxImageBytes)
	if err != nil {
		return handleValidationError(c, err)
	}

	cmd, err := form.createCommand()
	if err != nil {
		return handleValidationError(c, err)
	}

	hotel, err := h.admin.Create(c.Request().Context(), cmd)
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.Created(c, ToHotelDTO(hotel))
}

// Update handles PUT /api/hotels/:id
//
// @Summary Update a hotel
// @Description Partial update: only provided non-empty fields change. Uploaded images are appended to imageUrls.
// @Tags hotels
// @Accept mpfd
// @Produce json
// @Security CookieAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} HotelDTO
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Failure 502 {object} response.ErrorDetail
// @Router /api/hotels/{id} [put]
func (h *HotelHandler) Update(c echo.Context) error {
	form, err := readHotelForm(c, h.maxImageBytes)
	if err != nil {
		return handleValidationError(c, err)
	}

	cmd, err := form.updateCommand()
	if err != nil {
		return handleValidationError(c, err)
	}

	hotel, err := h.admin.Update(c.Request().Context(), c.Param("id"), cmd)
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.OK(c, ToHotelDTO(hotel))
}

// Delete handles DELETE /api/hotels/:id
//
// @Summary Delete a hotel
// @Tags hotels
// @Produce json
// @Security CookieAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/hotels/{id} [delete]
func (h *HotelHandler) Delete(c echo.Context) error {
	if err := h.admin.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.OKMessage(c, "Hotel deleted successfully")
}
