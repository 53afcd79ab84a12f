package response

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HeaderTotalCount carries the unwindowed number of matching hotels or bookings.
const HeaderTotalCount = "X-Total-Count"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Paged writes a 200 OK response holding one page of a listing, such as hotel
// search results or the admin booking list. total is the match count before
// the page window and is repeated in the X-Total-Count header.
func Paged(c echo.Context, total int64, page interface{}) error {
	if total < 0 {
		total = 0
	}
	c.Response().Header().Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	return c.JSON(http.StatusOK, page)
}
