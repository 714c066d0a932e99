// Package contracts defines the persistence interfaces consumed by the
// catalog services. Implementations live in the repo package; one backed by
// Cloud Spanner and one in-memory.
package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/filter"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest carries zero-based page options from the transport layer.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps page options to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

// Page is the envelope returned by list operations. TotalCount reflects the
// same predicate as Items, including the soft-delete visibility clause.
type Page[T any] struct {
	Items      []*T
	TotalCount int64
	Page       int
	Size       int
}

// Codec describes how one resource type maps onto its table: column layout,
// value conversion in both directions, access to the shared bookkeeping
// fields, and the resource's filterable surface.
type Codec[T any] interface {
	// Table returns the table name.
	Table() string

	// Columns returns every persisted column, in stable order.
	Columns() []string

	// Encode converts a record into a column-name to value map. Values use
	// the storage representations (big.Rat for prices, bool for deleted).
	Encode(rec *T) map[string]interface{}

	// Decode reconstructs a record from a row read with Columns().
	Decode(row *spanner.Row) (*T, error)

	// Meta exposes the record's bookkeeping fields for in-place mutation.
	Meta(rec *T) *domain.Record

	// Filter returns the schema the predicate builder uses for this resource.
	Filter() filter.Schema
}

// Repository provides transactional persistence for one resource type.
type Repository[T any] interface {
	// Insert persists a fully initialized new record.
	Insert(ctx context.Context, rec *T) error

	// GetByID fetches a record by identity, deleted or not; visibility
	// policy is applied by the service. Absent rows yield domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*T, error)

	// List returns one page of records matching the predicate, ordered by
	// creation time descending then id, plus the total match count under
	// the same predicate.
	List(ctx context.Context, pred filter.Node, page PageRequest) (*Page[T], error)

	// Mutate runs an atomic read-modify-write: it fetches the row, applies
	// fn, bumps the version by exactly 1, refreshes updatedAt and persists,
	// all inside one transaction. An error from fn aborts without writing.
	Mutate(ctx context.Context, id string, fn func(*T) error) (*T, error)
}
