package http

import (
	"net/http"
	"strconv"

	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
)

func parsePage(r *http.Request) (contracts.PageRequest, error) {
	var page contracts.PageRequest
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, domain.NewValidationError("page", "must be a non-negative integer")
		}
		page.Page = n
	}
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, domain.NewValidationError("size", "must be a non-negative integer")
		}
		page.Size = n
	}
	return page, nil
}

// filterParams flattens the query string into the single-valued map the
// predicate builder consumes. Paging keys are handled separately.
func filterParams(r *http.Request) map[string]string {
	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if key == "page" || key == "size" {
			continue
		}
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
