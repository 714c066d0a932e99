package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/app/catalog/repo"
	"github.com/camal/business-management/internal/models/m_product"
	"github.com/camal/business-management/internal/pkg/clock"
	"github.com/camal/business-management/internal/pkg/filter"
)

func newProductService(t *testing.T) (*Service[domain.Product], *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	codec := m_product.Codec{}
	return NewService[domain.Product](repo.NewMemoryRepo[domain.Product](codec, clk), codec, clk), clk
}

func mustMoney(t *testing.T, s string) *domain.Money {
	t.Helper()
	m, err := domain.ParseMoney(s)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, name, price string) *domain.Product {
	t.Helper()
	return &domain.Product{
		URL:         "https://shop.example/" + name,
		ProductName: name,
		BoughtPrice: mustMoney(t, price),
		SellPrice:   mustMoney(t, price),
		Description: "a " + name,
	}
}

func version(v int64) *int64 { return &v }

func TestService_Create(t *testing.T) {
	svc, clk := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10.50"))
	require.NoError(t, err)

	meta := svc.Meta(created)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, int64(0), meta.Version)
	assert.Equal(t, clk.Now(), meta.CreatedAt)
	assert.Equal(t, meta.CreatedAt, meta.UpdatedAt)
	assert.False(t, meta.Deleted)

	// Distinct creations get distinct identities.
	other, err := svc.Create(ctx, newProduct(t, "gadget", "3"))
	require.NoError(t, err)
	assert.NotEqual(t, meta.ID, svc.Meta(other).ID)
}

func TestService_Get(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, svc.Meta(created).ID)
	require.NoError(t, err)
	assert.Equal(t, "widget", got.ProductName)

	_, err = svc.Get(ctx, "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	svc, clk := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)
	id := svc.Meta(created).ID
	createdAt := svc.Meta(created).CreatedAt

	clk.Advance(time.Minute)
	updated, err := svc.Update(ctx, id, version(0), func(rec *domain.Product) error {
		rec.ProductName = "widget mk2"
		return nil
	})
	require.NoError(t, err)

	meta := svc.Meta(updated)
	assert.Equal(t, "widget mk2", updated.ProductName)
	assert.Equal(t, int64(1), meta.Version)
	assert.Equal(t, createdAt, meta.CreatedAt)
	assert.Equal(t, clk.Now(), meta.UpdatedAt)
}

func TestService_UpdateRequiresVersion(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, svc.Meta(created).ID, nil, func(rec *domain.Product) error {
		rec.ProductName = "nope"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrVersionRequired)
}

func TestService_StaleVersionConflictLeavesRecordUntouched(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)
	id := svc.Meta(created).ID

	_, err = svc.Update(ctx, id, version(7), func(rec *domain.Product) error {
		rec.ProductName = "nope"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "widget", got.ProductName)
	assert.Equal(t, int64(0), svc.Meta(got).Version)
}

func TestService_PatchOnlyTouchesSentFields(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)
	id := svc.Meta(created).ID

	patched, err := svc.Patch(ctx, id, version(0), func(rec *domain.Product) error {
		rec.SellPrice = mustMoney(t, "12.50")
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "widget", patched.ProductName)
	assert.True(t, patched.BoughtPrice.Equal(mustMoney(t, "10")))
	assert.True(t, patched.SellPrice.Equal(mustMoney(t, "12.50")))
	assert.Equal(t, int64(1), svc.Meta(patched).Version)
}

func TestService_VersionLifecycle(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)
	id := svc.Meta(created).ID
	require.Equal(t, int64(0), svc.Meta(created).Version)

	// First writer wins with the fresh token.
	_, err = svc.Update(ctx, id, version(0), func(rec *domain.Product) error {
		rec.Description = "updated"
		return nil
	})
	require.NoError(t, err)

	// A second writer still holding version 0 conflicts.
	_, err = svc.Patch(ctx, id, version(0), func(rec *domain.Product) error {
		rec.Description = "stale"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	// Re-reading yields the current token, which succeeds.
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	patched, err := svc.Patch(ctx, id, version(svc.Meta(got).Version), func(rec *domain.Product) error {
		rec.Description = "fresh"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), svc.Meta(patched).Version)
	assert.Equal(t, "fresh", patched.Description)
}

func TestService_Delete(t *testing.T) {
	svc, clk := newProductService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newProduct(t, "widget", "10"))
	require.NoError(t, err)
	id := svc.Meta(created).ID

	clk.Advance(time.Minute)
	require.NoError(t, svc.Delete(ctx, id))

	// The identity disappears from every by-id operation.
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, id, version(1), func(rec *domain.Product) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again reports not-found rather than succeeding silently.
	assert.ErrorIs(t, svc.Delete(ctx, id), domain.ErrNotFound)

	// Deleting an unknown identity behaves the same.
	assert.ErrorIs(t, svc.Delete(ctx, "no-such-id"), domain.ErrNotFound)
}

func TestService_ListExcludesDeleted(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	kept, err := svc.Create(ctx, newProduct(t, "kept", "10"))
	require.NoError(t, err)
	gone, err := svc.Create(ctx, newProduct(t, "gone", "10"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, svc.Meta(gone).ID))

	page, err := svc.List(ctx, map[string]string{}, contracts.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, svc.Meta(kept).ID, svc.Meta(page.Items[0]).ID)
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestService_ListPriceRange(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	for _, price := range []string{"5", "15", "25"} {
		_, err := svc.Create(ctx, newProduct(t, "p"+price, price))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, map[string]string{
		"minSellPrice": "10",
		"maxSellPrice": "20",
	}, contracts.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].SellPrice.Equal(mustMoney(t, "15")))
}

func TestService_ListTextMatchIsCaseInsensitive(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newProduct(t, "integration test kit", "5"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newProduct(t, "widget", "5"))
	require.NoError(t, err)

	page, err := svc.List(ctx, map[string]string{"productName": "TEST"}, contracts.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "integration test kit", page.Items[0].ProductName)
}

func TestService_ListSearchSpansFields(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	byName := newProduct(t, "acme widget", "5")
	_, err := svc.Create(ctx, byName)
	require.NoError(t, err)

	byDescription := newProduct(t, "gadget", "5")
	byDescription.Description = "made by Acme Corp"
	_, err = svc.Create(ctx, byDescription)
	require.NoError(t, err)

	_, err = svc.Create(ctx, newProduct(t, "other", "5"))
	require.NoError(t, err)

	page, err := svc.List(ctx, map[string]string{"q": "acme"}, contracts.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}

func TestService_ListMalformedPriceRejected(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.List(context.Background(), map[string]string{"sellPrice": "cheap"}, contracts.PageRequest{})
	require.Error(t, err)

	var badValue *filter.BadValueError
	assert.ErrorAs(t, err, &badValue)
}
