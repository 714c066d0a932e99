package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/clock"
	"github.com/camal/business-management/internal/pkg/filter"
)

// MemoryRepo is an in-memory Repository with the same semantics as the
// Spanner implementation, including atomic read-modify-write under a mutex.
// It evaluates predicates with filter.Eval over the codec's encoded view,
// so the filtering behavior matches the SQL lowering.
type MemoryRepo[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	codec contracts.Codec[T]
	clock clock.Clock
}

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo[T any](codec contracts.Codec[T], clk clock.Clock) *MemoryRepo[T] {
	return &MemoryRepo[T]{
		rows:  make(map[string]T),
		codec: codec,
		clock: clk,
	}
}

// Insert persists a fully initialized record.
func (r *MemoryRepo[T]) Insert(ctx context.Context, rec *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Records hold immutable Money values, so value copies are safe.
	r.rows[r.codec.Meta(rec).ID] = *rec
	return nil
}

// GetByID reads a record by identity, deleted or not.
func (r *MemoryRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := row
	return &out, nil
}

// List evaluates the predicate in memory and pages the matches ordered by
// creation time descending then id, like the Spanner implementation.
func (r *MemoryRepo[T]) List(ctx context.Context, pred filter.Node, page contracts.PageRequest) (*contracts.Page[T], error) {
	page = page.Normalize()

	r.mu.RLock()
	matches := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		if filter.Eval(pred, r.codec.Encode(&row)) {
			matches = append(matches, row)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		mi, mj := r.codec.Meta(&matches[i]), r.codec.Meta(&matches[j])
		if !mi.CreatedAt.Equal(mj.CreatedAt) {
			return mi.CreatedAt.After(mj.CreatedAt)
		}
		return mi.ID < mj.ID
	})

	total := int64(len(matches))
	start := page.Page * page.Size
	if start > len(matches) {
		start = len(matches)
	}
	end := start + page.Size
	if end > len(matches) {
		end = len(matches)
	}

	items := make([]*T, 0, end-start)
	for i := start; i < end; i++ {
		row := matches[i]
		items = append(items, &row)
	}

	return &contracts.Page[T]{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

// Mutate applies fn to a copy of the stored record under the write lock,
// then bumps the version and refreshes updatedAt before storing it back.
// Errors from fn leave the stored record untouched.
func (r *MemoryRepo[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	work := row
	if err := fn(&work); err != nil {
		return nil, err
	}

	meta := r.codec.Meta(&work)
	meta.Version++
	meta.UpdatedAt = r.clock.Now()

	r.rows[id] = work
	out := work
	return &out, nil
}
