package http

import (
	"errors"
	"net/http"

	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/filter"
)

// statusFor translates service errors into HTTP responses. Anything not
// recognized here is reported as an internal error without leaking details.
func statusFor(err error) (int, string) {
	var invalid *domain.ValidationError
	var badValue *filter.BadValueError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict, "version does not match the stored record"
	case errors.Is(err, domain.ErrVersionRequired):
		return http.StatusBadRequest, "version is required"
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Error()
	case errors.As(err, &badValue):
		return http.StatusBadRequest, badValue.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
