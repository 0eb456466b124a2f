package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"starter-backend/internal/domains/item"
	"starter-backend/internal/store"
)

const defaultLimit = 100

type itemService struct {
	table *store.Table[item.Item, *item.Item]
}

// NewService builds the item service on top of an injected table handle.
// Tests construct isolated stores; nothing here is ambient global state.
func NewService(table *store.Table[item.Item, *item.Item]) item.Service {
	return &itemService{table: table}
}

// List returns one window of the filtered table. Limit 0 falls back to the
// default page size; a negative limit disables the cap entirely.
func (s *itemService) List(_ context.Context, f item.Filter) ([]item.Item, error) {
	if f.Limit == 0 {
		f.Limit = defaultLimit
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	filtered := s.filtered(f.Category, f.AvailableOnly)

	if f.Skip >= len(filtered) {
		return []item.Item{}, nil
	}
	end := len(filtered)
	if f.Limit > 0 {
		if e := f.Skip + f.Limit; e < end {
			end = e
		}
	}
	return filtered[f.Skip:end], nil
}

func (s *itemService) ListPaginated(_ context.Context, page, size int, category string, availableOnly bool) (*item.Page, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	filtered := s.filtered(category, availableOnly)
	total := len(filtered)
	pages := (total + size - 1) / size

	skip := (page - 1) * size
	items := []item.Item{}
	if skip < total {
		end := skip + size
		if end > total {
			end = total
		}
		items = filtered[skip:end]
	}

	return &item.Page{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}, nil
}

// filtered returns the full table narrowed by category and availability,
// preserving insertion order. Pagination always happens after this.
func (s *itemService) filtered(category string, availableOnly bool) []item.Item {
	return s.table.Find(func(it item.Item) bool {
		if category != "" && it.Category != category {
			return false
		}
		if availableOnly && !it.IsAvailable {
			return false
		}
		return true
	})
}

func (s *itemService) Get(_ context.Context, id int) (*item.Item, error) {
	it, ok := s.table.FindByID(id)
	if !ok {
		return nil, item.ErrItemNotFound
	}
	return &it, nil
}

func (s *itemService) Create(_ context.Context, req *item.CreateItemRequest) (*item.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	created := s.table.Insert(req.ToItem())
	return &created, nil
}

func (s *itemService) CreateBulk(_ context.Context, reqs []item.CreateItemRequest) ([]item.Item, error) {
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return nil, err
		}
	}
	created := make([]item.Item, 0, len(reqs))
	for i := range reqs {
		created = append(created, s.table.Insert(reqs[i].ToItem()))
	}
	return created, nil
}

func (s *itemService) Update(_ context.Context, id int, req *item.UpdateItemRequest) (*item.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	updated, ok := s.table.Update(id, func(it *item.Item) {
		req.Apply(it)
	})
	if !ok {
		return nil, item.ErrItemNotFound
	}
	return &updated, nil
}

func (s *itemService) Delete(_ context.Context, id int) (*item.Item, error) {
	it, ok := s.table.FindByID(id)
	if !ok {
		return nil, item.ErrItemNotFound
	}
	if !s.table.Delete(id) {
		return nil, item.ErrItemNotFound
	}
	return &it, nil
}

func (s *itemService) Search(_ context.Context, query, field string) ([]item.Item, error) {
	q := strings.ToLower(query)

	var pick func(item.Item) string
	switch field {
	case "name":
		pick = func(it item.Item) string { return it.Name }
	case "category":
		pick = func(it item.Item) string { return it.Category }
	case "description":
		pick = func(it item.Item) string { return it.Description }
	default:
		return nil, item.ErrInvalidSearchField
	}

	return s.table.Find(func(it item.Item) bool {
		return strings.Contains(strings.ToLower(pick(it)), q)
	}), nil
}

func (s *itemService) SearchByCategory(_ context.Context, category string) ([]item.Item, error) {
	return s.table.Find(func(it item.Item) bool {
		return it.Category == category
	}), nil
}

func (s *itemService) Stats(_ context.Context) (*item.Stats, error) {
	all := s.table.All()

	stats := &item.Stats{
		TotalItems: len(all),
		Categories: map[string]int{},
	}

	total := decimal.Zero
	var minPrice, maxPrice decimal.Decimal
	priced := 0

	for i := range all {
		it := &all[i]
		if it.IsAvailable {
			stats.AvailableItems++
		}

		category := it.Category
		if category == "" {
			category = "uncategorized"
		}
		stats.Categories[category]++

		if it.Price == 0 {
			continue
		}
		p := decimal.NewFromFloat(it.Price)
		total = total.Add(p)
		if priced == 0 || p.LessThan(minPrice) {
			minPrice = p
		}
		if priced == 0 || p.GreaterThan(maxPrice) {
			maxPrice = p
		}
		priced++
	}

	stats.UnavailableItems = stats.TotalItems - stats.AvailableItems
	stats.Pricing.TotalValue = total.InexactFloat64()
	if priced > 0 {
		stats.Pricing.AveragePrice = total.Div(decimal.NewFromInt(int64(priced))).Round(2).InexactFloat64()
		stats.Pricing.MinPrice = minPrice.InexactFloat64()
		stats.Pricing.MaxPrice = maxPrice.InexactFloat64()
	}
	return stats, nil
}
