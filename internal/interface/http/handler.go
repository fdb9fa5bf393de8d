package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/pkg/listing"
	"github.com/oksasatya/edo-marketplace-admin/pkg/response"
	"github.com/oksasatya/edo-marketplace-admin/pkg/validation"
)

// ExportURLHeader carries the archive location of a CSV download.
const ExportURLHeader = "X-Export-URL"

// pageParams reads page and page_size, defaulting to the first page of DefaultPageSize.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(listing.DefaultPageSize)))
	if err != nil || size < 1 {
		size = listing.DefaultPageSize
	}
	if size > listing.MaxPageSize {
		size = listing.MaxPageSize
	}
	return page, size
}

func pageMeta[T any](p listing.Page[T]) response.PageMeta {
	return response.PageMeta{Page: p.Page, PageSize: p.PageSize, Total: p.Total, TotalPages: p.TotalPages}
}

func badRequest(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{Code: "invalid_payload", Details: validation.ToDetails(err)})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrProductNotFound),
		errors.Is(err, app.ErrTransactionNotFound),
		errors.Is(err, app.ErrCategoryNotFound),
		errors.Is(err, app.ErrFestivalNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, app.ErrInvalidStatus),
		errors.Is(err, app.ErrInvalidRole),
		errors.Is(err, app.ErrPriceAboveLimit),
		errors.Is(err, app.ErrInvalidProduct),
		errors.Is(err, app.ErrInvalidDateRange),
		errors.Is(err, app.ErrUnknownProvider),
		errors.Is(err, app.ErrInvalidSettings),
		errors.Is(err, app.ErrNameRequired):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, app.ErrNotDisputed),
		errors.Is(err, app.ErrCategoryNameTaken),
		errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict, "conflict"
	case errors.Is(err, app.ErrNotificationsOff),
		errors.Is(err, app.ErrAudienceMissing):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// fail writes the error envelope for a service error.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		msg = "internal error"
	}
	response.Error[any](c, status, msg, response.ErrorBody{Code: code})
}

// sendExport serves a CSV download, exposing the archive URL when there is one.
func sendExport(c *gin.Context, exp app.Export) {
	if exp.URL != "" {
		c.Header(ExportURLHeader, exp.URL)
	}
	response.Attachment(c, exp.Filename, exp.ContentType, exp.Body)
}
