package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"propfinder/internal/errors"
	"propfinder/internal/service"
)

// PropertyHandler handles listing endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// SearchRequest is the search payload.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// ListProperties godoc
// @Summary List properties
// @Description Returns every listing, newest first. No pagination.
// @Tags properties
// @Produce json
// @Success 200 {array} model.Property
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	properties, err := h.propertyService.ListProperties(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}

// SearchProperties godoc
// @Summary Search properties
// @Description Case-insensitive substring search over title, location and description.
// @Tags properties
// @Accept json
// @Produce json
// @Param query body SearchRequest true "Search payload"
// @Success 200 {array} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /search [post]
func (h *PropertyHandler) SearchProperties(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	properties, err := h.propertyService.SearchProperties(c.Request().Context(), req.Query)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, properties)
}
