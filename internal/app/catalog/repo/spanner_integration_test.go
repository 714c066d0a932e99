//go:build integration

package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/models/m_product"
	"github.com/camal/business-management/internal/pkg/clock"
	"github.com/camal/business-management/internal/pkg/filter"
)

// These tests run against the Spanner emulator with the migrations applied:
//
//	SPANNER_EMULATOR_HOST=localhost:9010 go test -tags integration ./internal/app/catalog/repo/

func setupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		db = "projects/test-project/instances/dev-instance/databases/business-management-db"
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, db)
	require.NoError(t, err)

	clean := func() {
		mutations := []*spanner.Mutation{
			spanner.Delete("products", spanner.AllKeys()),
		}
		_, err := client.Apply(ctx, mutations)
		require.NoError(t, err)
	}
	clean()

	return client, func() {
		clean()
		client.Close()
	}
}

func insertTestProduct(t *testing.T, r *SpannerRepo[domain.Product], id, name, price string, clk clock.Clock) {
	t.Helper()
	money, err := domain.ParseMoney(price)
	require.NoError(t, err)

	now := clk.Now()
	rec := &domain.Product{
		Record: domain.Record{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		URL:         "https://shop.example/" + id,
		ProductName: name,
		BoughtPrice: money,
		SellPrice:   money,
		Description: "integration fixture",
	}
	require.NoError(t, r.Insert(context.Background(), rec))
}

func TestSpannerRepo_InsertAndGet(t *testing.T) {
	client, cleanup := setupSpannerTest(t)
	defer cleanup()

	clk := clock.NewMockClock(time.Now().UTC().Truncate(time.Microsecond))
	r := NewSpannerRepo[domain.Product](client, m_product.Codec{}, clk)

	insertTestProduct(t, r, "it-1", "emulator widget", "10.50", clk)

	got, err := r.GetByID(context.Background(), "it-1")
	require.NoError(t, err)
	assert.Equal(t, "emulator widget", got.ProductName)
	assert.True(t, got.SellPrice.Equal(mustParseMoney(t, "10.50")))
	assert.Equal(t, int64(0), got.Version)
	assert.False(t, got.Deleted)

	_, err = r.GetByID(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSpannerRepo_Mutate(t *testing.T) {
	client, cleanup := setupSpannerTest(t)
	defer cleanup()

	clk := clock.NewMockClock(time.Now().UTC().Truncate(time.Microsecond))
	r := NewSpannerRepo[domain.Product](client, m_product.Codec{}, clk)
	insertTestProduct(t, r, "it-2", "widget", "10", clk)

	clk.Advance(time.Minute)
	got, err := r.Mutate(context.Background(), "it-2", func(rec *domain.Product) error {
		rec.ProductName = "widget mk2"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "widget mk2", got.ProductName)
	assert.Equal(t, int64(1), got.Version)

	persisted, err := r.GetByID(context.Background(), "it-2")
	require.NoError(t, err)
	assert.Equal(t, "widget mk2", persisted.ProductName)
	assert.Equal(t, int64(1), persisted.Version)
}

func TestSpannerRepo_ListFilterAndCount(t *testing.T) {
	client, cleanup := setupSpannerTest(t)
	defer cleanup()

	clk := clock.NewMockClock(time.Now().UTC().Truncate(time.Microsecond))
	r := NewSpannerRepo[domain.Product](client, m_product.Codec{}, clk)

	for _, fixture := range []struct{ id, name, price string }{
		{"it-a", "cheap widget", "5"},
		{"it-b", "mid widget", "15"},
		{"it-c", "dear widget", "25"},
	} {
		insertTestProduct(t, r, fixture.id, fixture.name, fixture.price, clk)
		clk.Advance(time.Second)
	}

	pred, err := filter.Build(m_product.Codec{}.Filter(), map[string]string{
		"minSellPrice": "10",
		"maxSellPrice": "20",
	})
	require.NoError(t, err)

	page, err := r.List(context.Background(), pred, contracts.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "mid widget", page.Items[0].ProductName)
	assert.Equal(t, int64(1), page.TotalCount)
}

func mustParseMoney(t *testing.T, s string) *domain.Money {
	t.Helper()
	m, err := domain.ParseMoney(s)
	require.NoError(t, err)
	return m
}
