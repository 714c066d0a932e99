package m_masson

import (
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/filter"
)

// Codec maps domain.Masson onto the massons table.
type Codec struct{}

// Table returns the table name.
func (Codec) Table() string {
	return TableName
}

// Columns returns every persisted column in stable order.
func (Codec) Columns() []string {
	return []string{ID, Name, Age, MassonType, Version, CreatedAt, UpdatedAt, Deleted}
}

// Encode converts a record into its storage column map.
func (Codec) Encode(rec *domain.Masson) map[string]interface{} {
	return map[string]interface{}{
		ID:         rec.ID,
		Name:       rec.Name,
		Age:        rec.Age,
		MassonType: rec.MassonType,
		Version:    rec.Version,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
		Deleted:    rec.Deleted,
	}
}

// Decode reconstructs a record from a row read with Columns().
func (Codec) Decode(row *spanner.Row) (*domain.Masson, error) {
	var data Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse masson row: %w", err)
	}

	return &domain.Masson{
		Record: domain.Record{
			ID:        data.ID,
			Version:   data.Version,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
			Deleted:   data.Deleted,
		},
		Name:       data.Name,
		Age:        data.Age,
		MassonType: data.MassonType,
	}, nil
}

// Meta exposes the bookkeeping fields for in-place mutation.
func (Codec) Meta(rec *domain.Masson) *domain.Record {
	return &rec.Record
}

// Filter declares the filterable surface of the massons resource.
func (Codec) Filter() filter.Schema {
	return filter.Schema{
		Search: []string{Name, MassonType},
		Texts: []filter.TextField{
			{Param: "name", Field: Name},
			{Param: "age", Field: Age},
			{Param: "massonType", Field: MassonType},
		},
	}
}
