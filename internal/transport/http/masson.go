package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/camal/business-management/internal/app/catalog/domain"
)

type massonPayload struct {
	Version    *int64  `json:"version"`
	Name       *string `json:"name"`
	Age        *string `json:"age"`
	MassonType *string `json:"massonType"`
}

type massonBody struct {
	ID         string    `json:"id"`
	Version    int64     `json:"version"`
	Name       string    `json:"name"`
	Age        string    `json:"age"`
	MassonType string    `json:"massonType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (p *massonPayload) validate(full bool) error {
	if full && (p.Name == nil || strings.TrimSpace(*p.Name) == "") {
		return domain.NewValidationError("name", "is required")
	}
	if p.Name != nil && len(*p.Name) > maxNameLen {
		return domain.NewValidationError("name", "must not exceed 255 characters")
	}
	if p.Age != nil && len(*p.Age) > maxAgeLen {
		return domain.NewValidationError("age", "must not exceed 50 characters")
	}
	if p.MassonType != nil && len(*p.MassonType) > maxMassonTypeLen {
		return domain.NewValidationError("massonType", "must not exceed 100 characters")
	}
	return nil
}

type MassonMapper struct{}

func (MassonMapper) Create(r *http.Request) (*domain.Masson, error) {
	var p massonPayload
	if err := decodeBody(r, &p); err != nil {
		return nil, err
	}
	if err := p.validate(true); err != nil {
		return nil, err
	}
	return &domain.Masson{
		Name:       strValue(p.Name),
		Age:        strValue(p.Age),
		MassonType: strValue(p.MassonType),
	}, nil
}

func (MassonMapper) Update(r *http.Request) (*int64, func(*domain.Masson) error, error) {
	var p massonPayload
	if err := decodeBody(r, &p); err != nil {
		return nil, nil, err
	}
	if err := p.validate(true); err != nil {
		return nil, nil, err
	}
	apply := func(rec *domain.Masson) error {
		rec.Name = strValue(p.Name)
		rec.Age = strValue(p.Age)
		rec.MassonType = strValue(p.MassonType)
		return nil
	}
	return p.Version, apply, nil
}

func (MassonMapper) Patch(r *http.Request) (*int64, func(*domain.Masson) error, error) {
	var p massonPayload
	if err := decodeBody(r, &p); err != nil {
		return nil, nil, err
	}
	if err := p.validate(false); err != nil {
		return nil, nil, err
	}
	apply := func(rec *domain.Masson) error {
		if p.Name != nil {
			rec.Name = *p.Name
		}
		if p.Age != nil {
			rec.Age = *p.Age
		}
		if p.MassonType != nil {
			rec.MassonType = *p.MassonType
		}
		return nil
	}
	return p.Version, apply, nil
}

func (MassonMapper) Response(rec *domain.Masson) interface{} {
	return massonBody{
		ID:         rec.ID,
		Version:    rec.Version,
		Name:       rec.Name,
		Age:        rec.Age,
		MassonType: rec.MassonType,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
