package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starter-backend/internal/domains/item"
	"starter-backend/internal/store"
)

func newTestService(t *testing.T) item.Service {
	t.Helper()
	db := store.NewDatabase()
	return NewService(store.TableOf[item.Item](db, item.TableName))
}

func ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, svc item.Service, name, category string, price float64, available bool) *item.Item {
	t.Helper()
	created, err := svc.Create(context.Background(), &item.CreateItemRequest{
		Name:        name,
		Price:       price,
		Category:    category,
		IsAvailable: ptr(available),
	})
	require.NoError(t, err)
	return created
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), &item.CreateItemRequest{
		Name:  "Widget",
		Price: 9.99,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, []string{}, created.Tags)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		req  item.CreateItemRequest
	}{
		{"missing name", item.CreateItemRequest{Price: 1}},
		{"zero price", item.CreateItemRequest{Name: "x", Price: 0}},
		{"negative price", item.CreateItemRequest{Name: "x", Price: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.req)
			require.Error(t, err)
			assert.Equal(t, 422, item.HTTPStatus(err))
		})
	}

	// Nothing was stored.
	all, err := svc.List(context.Background(), item.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListFiltersBeforePagination(t *testing.T) {
	svc := newTestService(t)

	// Interleave categories so a paginate-then-filter bug would show.
	for i := 0; i < 10; i++ {
		cat := "tools"
		if i%2 == 0 {
			cat = "toys"
		}
		mustCreate(t, svc, "item", cat, 1.0, true)
	}

	page, err := svc.List(context.Background(), item.Filter{Category: "toys", Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	for _, it := range page {
		assert.Equal(t, "toys", it.Category)
	}

	// The window slices the filtered sequence: 5 toys total, skip 2 → 3rd and 4th.
	assert.Equal(t, 5, page[0].ID)
	assert.Equal(t, 7, page[1].ID)
}

func TestListAvailableOnly(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, "in stock", "", 1, true)
	mustCreate(t, svc, "sold out", "", 1, false)

	items, err := svc.List(context.Background(), item.Filter{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "in stock", items[0].Name)
}

func TestListNegativeLimitReturnsEverything(t *testing.T) {
	svc := newTestService(t)
	for i := 0; i < 150; i++ {
		mustCreate(t, svc, "item", "", 1, true)
	}

	items, err := svc.List(context.Background(), item.Filter{Limit: -1})
	require.NoError(t, err)
	assert.Len(t, items, 150)

	// Limit 0 falls back to the default page size.
	items, err = svc.List(context.Background(), item.Filter{})
	require.NoError(t, err)
	assert.Len(t, items, 100)
}

func TestListPaginated(t *testing.T) {
	svc := newTestService(t)
	for i := 0; i < 25; i++ {
		mustCreate(t, svc, "item", "", 1, true)
	}

	page, err := svc.ListPaginated(context.Background(), 3, 10, "", false)
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 5)

	// Past the end: empty page, same bookkeeping.
	page, err = svc.ListPaginated(context.Background(), 9, 10, "", false)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Total)
}

func TestGetMissingItem(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 123)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestUpdatePartialPatch(t *testing.T) {
	svc := newTestService(t)
	created := mustCreate(t, svc, "old name", "tools", 10, true)

	updated, err := svc.Update(context.Background(), created.ID, &item.UpdateItemRequest{
		Price: ptr(12.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "old name", updated.Name)
	assert.Equal(t, "tools", updated.Category)
	assert.Equal(t, 12.5, updated.Price)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateRejectsNonPositivePriceBeforeStore(t *testing.T) {
	svc := newTestService(t)
	created := mustCreate(t, svc, "widget", "", 10, true)

	// Zero must fail just like negative: threshold rules skip 0 as an empty
	// value, so the zero case guards against regressing to them.
	for _, price := range []float64{0, -1} {
		_, err := svc.Update(context.Background(), created.ID, &item.UpdateItemRequest{
			Price: ptr(price),
		})
		require.Error(t, err, "price %v must be rejected", price)
		assert.Equal(t, 422, item.HTTPStatus(err))
	}

	// Record untouched, including its UpdatedAt.
	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Price)
	assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateRejectsEmptyName(t *testing.T) {
	svc := newTestService(t)
	created := mustCreate(t, svc, "widget", "", 10, true)

	_, err := svc.Update(context.Background(), created.ID, &item.UpdateItemRequest{
		Name: ptr(""),
	})
	require.Error(t, err)
	assert.Equal(t, 422, item.HTTPStatus(err))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "widget", got.Name)
}

func TestUpdateMissingItem(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), 7, &item.UpdateItemRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestDeleteReturnsTheDeletedItem(t *testing.T) {
	svc := newTestService(t)
	created := mustCreate(t, svc, "doomed", "", 1, true)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "doomed", deleted.Name)

	_, err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestCreateBulkValidatesWholeBatchFirst(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateBulk(context.Background(), []item.CreateItemRequest{
		{Name: "ok", Price: 1},
		{Name: "", Price: 1},
	})
	require.Error(t, err)

	// The valid first entry must not have been inserted.
	all, listErr := svc.List(context.Background(), item.Filter{})
	require.NoError(t, listErr)
	assert.Empty(t, all)

	created, err := svc.CreateBulk(context.Background(), []item.CreateItemRequest{
		{Name: "a", Price: 1},
		{Name: "b", Price: 2},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 1, created[0].ID)
	assert.Equal(t, 2, created[1].ID)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, "Wireless Mouse", "electronics", 25, true)
	mustCreate(t, svc, "Mousepad", "accessories", 8, true)
	mustCreate(t, svc, "Keyboard", "electronics", 45, true)

	found, err := svc.Search(context.Background(), "MOUSE", "name")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.Search(context.Background(), "electro", "category")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSearchInvalidField(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Search(context.Background(), "x", "price")
	assert.ErrorIs(t, err, item.ErrInvalidSearchField)
}

func TestSearchByCategoryIsExact(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, "a", "books", 1, true)
	mustCreate(t, svc, "b", "bookshelves", 1, true)

	found, err := svc.SearchByCategory(context.Background(), "books")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a", found[0].Name)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, "a", "tools", 10, true)
	mustCreate(t, svc, "b", "tools", 20, true)
	mustCreate(t, svc, "c", "", 30, false)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.AvailableItems)
	assert.Equal(t, 1, stats.UnavailableItems)
	assert.Equal(t, map[string]int{"tools": 2, "uncategorized": 1}, stats.Categories)
	assert.Equal(t, 60.0, stats.Pricing.TotalValue)
	assert.Equal(t, 20.0, stats.Pricing.AveragePrice)
	assert.Equal(t, 10.0, stats.Pricing.MinPrice)
	assert.Equal(t, 30.0, stats.Pricing.MaxPrice)
}

func TestStatsEmptyTable(t *testing.T) {
	svc := newTestService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalItems)
	assert.Empty(t, stats.Categories)
	assert.Zero(t, stats.Pricing.AveragePrice)
}
