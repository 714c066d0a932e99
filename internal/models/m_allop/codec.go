package m_allop

import (
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/filter"
)

// Codec maps domain.Allop onto the allops table.
type Codec struct{}

// Table returns the table name.
func (Codec) Table() string {
	return TableName
}

// Columns returns every persisted column in stable order.
func (Codec) Columns() []string {
	return []string{ID, URL, ProductName, BoughtPrice, SellPrice, Description, Version, CreatedAt, UpdatedAt, Deleted}
}

// Encode converts a record into its storage column map.
func (Codec) Encode(rec *domain.Allop) map[string]interface{} {
	return map[string]interface{}{
		ID:          rec.ID,
		URL:         rec.URL,
		ProductName: rec.ProductName,
		BoughtPrice: *rec.BoughtPrice.Rat(),
		SellPrice:   *rec.SellPrice.Rat(),
		Description: rec.Description,
		Version:     rec.Version,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Deleted:     rec.Deleted,
	}
}

// Decode reconstructs a record from a row read with Columns().
func (Codec) Decode(row *spanner.Row) (*domain.Allop, error) {
	var data Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse allop row: %w", err)
	}

	return &domain.Allop{
		Record: domain.Record{
			ID:        data.ID,
			Version:   data.Version,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
			Deleted:   data.Deleted,
		},
		URL:         data.URL,
		ProductName: data.ProductName,
		BoughtPrice: domain.NewMoneyFromRat(&data.BoughtPrice),
		SellPrice:   domain.NewMoneyFromRat(&data.SellPrice),
		Description: data.Description,
	}, nil
}

// Meta exposes the bookkeeping fields for in-place mutation.
func (Codec) Meta(rec *domain.Allop) *domain.Record {
	return &rec.Record
}

// Filter declares the filterable surface of the allops resource.
func (Codec) Filter() filter.Schema {
	return filter.Schema{
		Search: []string{URL, ProductName, Description},
		Texts: []filter.TextField{
			{Param: "url", Field: URL},
			{Param: "productName", Field: ProductName},
			{Param: "description", Field: Description},
		},
		Numbers: []filter.NumberField{
			{Param: "boughtPrice", Field: BoughtPrice},
			{Param: "sellPrice", Field: SellPrice},
		},
	}
}
