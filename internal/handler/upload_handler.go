package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"propfinder/internal/errors"
	"propfinder/internal/service"
)

// UploadHandler handles the multipart property upload endpoint.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadResponse is the upload endpoint's success envelope.
type UploadResponse struct {
	Success      bool        `json:"success"`
	PropertyID   uuid.UUID   `json:"property_id"`
	MediaIDs     []uuid.UUID `json:"media_ids"`
	TokensEarned int64       `json:"tokens_earned"`
	Message      string      `json:"message"`
}

// UploadProperty godoc
// @Summary Upload a property listing
// @Description Creates a property with attached media files. Each original file credits the uploader 100 tokens; duplicate content earns nothing.
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData string true "Owner user ID"
// @Param title formData string false "Listing title"
// @Param location formData string false "Location"
// @Param price formData number false "Price"
// @Param description formData string false "Description"
// @Param bedrooms formData integer false "Bedrooms"
// @Param bathrooms formData integer false "Bathrooms"
// @Param area_sqm formData number false "Area in square meters"
// @Param files formData file false "Media files"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.UploadFailure
// @Failure 404 {object} errors.UploadFailure
// @Failure 500 {object} errors.UploadFailure
// @Router /upload-property [post]
func (h *UploadHandler) UploadProperty(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.NewUploadFailure("invalid multipart form"))
	}

	input, err := parseUploadInput(form)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, errors.NewUploadFailure(httpErr.Message))
	}

	files, err := readUploadFiles(form.File["files"])
	if err != nil {
		logrus.WithError(err).Warn("reading upload files")
		return c.JSON(http.StatusBadRequest, errors.NewUploadFailure("could not read uploaded files"))
	}

	result, err := h.uploadService.UploadProperty(c.Request().Context(), input, files)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, errors.NewUploadFailure(httpErr.Message))
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Success:      true,
		PropertyID:   result.PropertyID,
		MediaIDs:     result.MediaIDs,
		TokensEarned: result.TokensEarned,
		Message:      fmt.Sprintf("Property created! Earned %d tokens", result.TokensEarned),
	})
}

// parseUploadInput extracts the listing fields from multipart form values.
// Malformed numeric fields are dropped rather than rejected, matching how
// the upload form has always behaved; only user_id is mandatory.
func parseUploadInput(form *multipart.Form) (service.UploadInput, error) {
	var input service.UploadInput

	userID, err := uuid.Parse(formValue(form, "user_id"))
	if err != nil {
		return input, errors.ErrMissingUserID
	}
	input.UserID = userID

	input.Title = formValue(form, "title")
	input.Location = formValue(form, "location")
	input.Description = formValue(form, "description")

	if price, err := decimal.NewFromString(formValue(form, "price")); err == nil {
		input.Price = price
	}
	if bedrooms, err := strconv.Atoi(formValue(form, "bedrooms")); err == nil {
		input.Bedrooms = &bedrooms
	}
	if bathrooms, err := strconv.Atoi(formValue(form, "bathrooms")); err == nil {
		input.Bathrooms = &bathrooms
	}
	if areaSqm, err := strconv.ParseFloat(formValue(form, "area_sqm"), 64); err == nil {
		input.AreaSqm = &areaSqm
	}

	return input, nil
}

func formValue(form *multipart.Form, name string) string {
	if values := form.Value[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func readUploadFiles(headers []*multipart.FileHeader) ([]service.UploadFile, error) {
	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", header.Filename, err)
		}
		files = append(files, service.UploadFile{Filename: header.Filename, Data: data})
	}
	return files, nil
}
