package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/camal/business-management/internal/app/catalog/domain"
)

const (
	maxNameLen        = 255
	maxURLLen         = 500
	maxDescriptionLen = 5000
	maxAgeLen         = 50
	maxMassonTypeLen  = 100
)

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "malformed JSON payload")
	}
	return nil
}

// validatePriced checks the common payload shape of the priced resources.
// full marks create and update requests, where the required fields must be
// present. Patch requests only validate the fields they carry.
func validatePriced(full bool, url, name *string, bought, sell *domain.Money, desc *string) error {
	if full && (name == nil || strings.TrimSpace(*name) == "") {
		return domain.NewValidationError("productName", "is required")
	}
	if name != nil && len(*name) > maxNameLen {
		return domain.NewValidationError("productName", "must not exceed 255 characters")
	}
	if url != nil && len(*url) > maxURLLen {
		return domain.NewValidationError("url", "must not exceed 500 characters")
	}
	if desc != nil && len(*desc) > maxDescriptionLen {
		return domain.NewValidationError("description", "must not exceed 5000 characters")
	}
	if full && bought == nil {
		return domain.NewValidationError("boughtPrice", "is required")
	}
	if bought != nil && bought.IsNegative() {
		return domain.NewValidationError("boughtPrice", "must not be negative")
	}
	if full && sell == nil {
		return domain.NewValidationError("sellPrice", "is required")
	}
	if sell != nil && sell.IsNegative() {
		return domain.NewValidationError("sellPrice", "must not be negative")
	}
	return nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
