package http

import (
	"net/http"
	"time"

	"github.com/camal/business-management/internal/app/catalog/domain"
)

// allopPayload carries the same write shape as the product payload.
type allopPayload struct {
	Version     *int64        `json:"version"`
	URL         *string       `json:"url"`
	ProductName *string       `json:"productName"`
	BoughtPrice *domain.Money `json:"boughtPrice"`
	SellPrice   *domain.Money `json:"sellPrice"`
	Description *string       `json:"description"`
}

type allopBody struct {
	ID          string        `json:"id"`
	Version     int64         `json:"version"`
	URL         string        `json:"url"`
	ProductName string        `json:"productName"`
	BoughtPrice *domain.Money `json:"boughtPrice"`
	SellPrice   *domain.Money `json:"sellPrice"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type AllopMapper struct{}

func (AllopMapper) Create(r *http.Request) (*domain.Allop, error) {
	var p allopPayload
	if err := decodeBody(r, &p); err != nil {
		return nil, err
	}
	if err := validatePriced(true, p.URL, p.ProductName, p.BoughtPrice, p.SellPrice, p.Description); err != nil {
		return nil, err
	}
	return &domain.Allop{
		URL:         strValue(p.URL),
		ProductName: strValue(p.ProductName),
		BoughtPrice: p.BoughtPrice,
		SellPrice:   p.SellPrice,
		Description: strValue(p.Description),
	}, nil
}

func (AllopMapper) Update(r *http.Request) (*int64, func(*domain.Allop) error, error) {
	var p allopPayload
	if err := decodeBody(r, &p); err != nil {
		return nil, nil, err
	}
	if err := validatePriced(true, p.URL, p.ProductName, p.BoughtPrice, p.SellPrice, p.Description); err != nil {
		return nil, nil, err
	}
	apply := func(rec *domain.Allop) error {
		rec.URL = strValue(p.URL)
		rec.ProductName = strValue(p.ProductName)
		rec.BoughtPrice = p.BoughtPrice
		rec.SellPrice = p.SellPrice
		rec.Description = strValue(p.Description)
		return nil
	}
	return p.Version, apply, nil
}

func (AllopMapper) Patch(r *http.Request) (*int64, func(*domain.Allop) error, error) {
	var p allopPayload
	if err := decodeBody(r, &p); err != nil {
		return nil, nil, err
	}
	if err := validatePriced(false, p.URL, p.ProductName, p.BoughtPrice, p.SellPrice, p.Description); err != nil {
		return nil, nil, err
	}
	apply := func(rec *domain.Allop) error {
		if p.URL != nil {
			rec.URL = *p.URL
		}
		if p.ProductName != nil {
			rec.ProductName = *p.ProductName
		}
		if p.BoughtPrice != nil {
			rec.BoughtPrice = p.BoughtPrice
		}
		if p.SellPrice != nil {
			rec.SellPrice = p.SellPrice
		}
		if p.Description != nil {
			rec.Description = *p.Description
		}
		return nil
	}
	return p.Version, apply, nil
}

func (AllopMapper) Response(rec *domain.Allop) interface{} {
	return allopBody{
		ID:          rec.ID,
		Version:     rec.Version,
		URL:         rec.URL,
		ProductName: rec.ProductName,
		BoughtPrice: rec.BoughtPrice,
		SellPrice:   rec.SellPrice,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
