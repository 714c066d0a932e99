// Package repo provides the Repository implementations for the catalog:
// one backed by Cloud Spanner and an in-memory one for tests and local runs.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/pkg/clock"
	"github.com/camal/business-management/internal/pkg/committer"
	"github.com/camal/business-management/internal/pkg/filter"
	"github.com/camal/business-management/internal/pkg/query"
)

// Shared bookkeeping columns present on every resource table.
const (
	colID        = "id"
	colCreatedAt = "created_at"
)

// SpannerRepo implements contracts.Repository for Cloud Spanner.
type SpannerRepo[T any] struct {
	client *spanner.Client
	codec  contracts.Codec[T]
	comm   *committer.Committer
	clock  clock.Clock
}

// NewSpannerRepo creates a repository for one resource type.
func NewSpannerRepo[T any](client *spanner.Client, codec contracts.Codec[T], clk clock.Clock) *SpannerRepo[T] {
	return &SpannerRepo[T]{
		client: client,
		codec:  codec,
		comm:   committer.NewCommitter(client),
		clock:  clk,
	}
}

// Insert persists a fully initialized record.
func (r *SpannerRepo[T]) Insert(ctx context.Context, rec *T) error {
	cols, vals := r.columnValues(rec)

	plan := committer.NewPlan()
	plan.Add(spanner.Insert(r.codec.Table(), cols, vals))

	if err := r.comm.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to insert %s row: %w", r.codec.Table(), err)
	}
	return nil
}

// GetByID reads a record by identity, deleted or not.
func (r *SpannerRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	row, err := r.client.Single().ReadRow(ctx, r.codec.Table(), spanner.Key{id}, r.codec.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s row: %w", r.codec.Table(), err)
	}
	return r.codec.Decode(row)
}

// List runs the lowered predicate and the matching count inside one
// read-only transaction so items and total reflect the same snapshot.
func (r *SpannerRepo[T]) List(ctx context.Context, pred filter.Node, page contracts.PageRequest) (*contracts.Page[T], error) {
	page = page.Normalize()

	base := query.From(r.codec.Table()).Select(r.codec.Columns()...)
	for _, cond := range query.Lower(pred) {
		base = base.Where(cond)
	}

	listStmt := base.
		OrderBy(colCreatedAt, query.Desc).
		OrderBy(colID, query.Asc).
		Limit(int64(page.Size)).
		Offset(int64(page.Page * page.Size)).
		Build()

	ro := r.client.ReadOnlyTransaction()
	defer ro.Close()

	items := make([]*T, 0, page.Size)
	iter := ro.Query(ctx, listStmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %s rows: %w", r.codec.Table(), err)
		}
		rec, err := r.codec.Decode(row)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}

	countIter := ro.Query(ctx, base.Count().Build())
	defer countIter.Stop()
	countRow, err := countIter.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to count %s rows: %w", r.codec.Table(), err)
	}
	var total int64
	if err := countRow.Column(0, &total); err != nil {
		return nil, fmt.Errorf("failed to parse %s count: %w", r.codec.Table(), err)
	}

	return &contracts.Page[T]{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

// Mutate runs an atomic read-modify-write. The row is re-read inside the
// read-write transaction, so fn always sees the committed state and a
// concurrent writer forces a transparent retry rather than a lost update.
// Errors returned by fn abort the transaction without writing.
func (r *SpannerRepo[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	var result *T

	err := r.comm.ReadModifyWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, r.codec.Table(), spanner.Key{id}, r.codec.Columns())
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to read %s row: %w", r.codec.Table(), err)
		}

		rec, err := r.codec.Decode(row)
		if err != nil {
			return err
		}

		if err := fn(rec); err != nil {
			return err
		}

		meta := r.codec.Meta(rec)
		meta.Version++
		meta.UpdatedAt = r.clock.Now()

		cols, vals := r.columnValues(rec)
		result = rec
		return txn.BufferWrite([]*spanner.Mutation{spanner.Update(r.codec.Table(), cols, vals)})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// columnValues flattens the encoded record into parallel column/value
// slices ordered by Columns().
func (r *SpannerRepo[T]) columnValues(rec *T) ([]string, []interface{}) {
	encoded := r.codec.Encode(rec)
	cols := r.codec.Columns()
	vals := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		vals = append(vals, encoded[col])
	}
	return cols, vals
}
