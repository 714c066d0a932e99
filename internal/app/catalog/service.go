// Package catalog implements the resource services: per-resource CRUD
// orchestration with soft-delete visibility and version-guarded writes.
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/clock"
	"github.com/camal/business-management/internal/pkg/filter"
)

// Service orchestrates fetch, guard, mutate, persist for one resource type.
// It is safe for concurrent use; the repository transaction is the only
// mutual-exclusion primitive.
type Service[T any] struct {
	repo  contracts.Repository[T]
	codec contracts.Codec[T]
	clock clock.Clock
}

// NewService creates a resource service.
func NewService[T any](repo contracts.Repository[T], codec contracts.Codec[T], clk clock.Clock) *Service[T] {
	return &Service[T]{
		repo:  repo,
		codec: codec,
		clock: clk,
	}
}

// Meta exposes the bookkeeping fields of a record.
func (s *Service[T]) Meta(rec *T) *domain.Record {
	return s.codec.Meta(rec)
}

// Create persists a new record. The store assigns the identity, the version
// starts at 0 and createdAt equals updatedAt.
func (s *Service[T]) Create(ctx context.Context, rec *T) (*T, error) {
	meta := s.codec.Meta(rec)
	now := s.clock.Now()

	meta.ID = uuid.NewString()
	meta.Version = 0
	meta.CreatedAt = now
	meta.UpdatedAt = now
	meta.Deleted = false

	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get fetches a record by identity. Soft-deleted records are not visible.
func (s *Service[T]) Get(ctx context.Context, id string) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.codec.Meta(rec).Deleted {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// List builds the predicate from the raw query parameters and returns one
// page of matches plus the total count under the same predicate.
func (s *Service[T]) List(ctx context.Context, params map[string]string, page contracts.PageRequest) (*contracts.Page[T], error) {
	pred, err := filter.Build(s.codec.Filter(), params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, pred, page)
}

// Update applies a full replacement of the domain attributes, guarded by
// the supplied version token. A nil version is a malformed request; a
// mismatching one is a conflict and leaves the record untouched.
func (s *Service[T]) Update(ctx context.Context, id string, version *int64, apply func(*T) error) (*T, error) {
	return s.mutateGuarded(ctx, id, version, apply)
}

// Patch applies a presence-sensitive merge under the same version guard as
// Update; the merge itself is carried by the apply closure.
func (s *Service[T]) Patch(ctx context.Context, id string, version *int64, apply func(*T) error) (*T, error) {
	return s.mutateGuarded(ctx, id, version, apply)
}

func (s *Service[T]) mutateGuarded(ctx context.Context, id string, version *int64, apply func(*T) error) (*T, error) {
	if version == nil {
		return nil, domain.ErrVersionRequired
	}

	return s.repo.Mutate(ctx, id, func(rec *T) error {
		meta := s.codec.Meta(rec)
		if meta.Deleted {
			return domain.ErrNotFound
		}
		if meta.Version != *version {
			return domain.ErrVersionConflict
		}
		return apply(rec)
	})
}

// Delete marks the record deleted. It is a regular mutation (version bump,
// updatedAt refresh) but requires no version token; deleting an identity
// that is absent or already deleted reports not-found.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Mutate(ctx, id, func(rec *T) error {
		meta := s.codec.Meta(rec)
		if meta.Deleted {
			return domain.ErrNotFound
		}
		meta.Deleted = true
		return nil
	})
	return err
}
