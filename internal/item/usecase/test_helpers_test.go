package usecase_test

import (
	"context"
	"sort"
	"time"

	repo "desapega-api/internal/item/repository"
	"desapega-api/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockItemRepo is an in-memory Repository honoring the zero-value-on-miss
// and compare-and-swap conventions of the postgres implementation.
type mockItemRepo struct {
	items  map[int64]model.Item
	nextID int64

	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error

	// raceTo, when non-empty, flips the stored status right before every
	// UpdateItem call, simulating a concurrent writer winning the race.
	raceTo model.ItemStatus
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: map[int64]model.Item{}, nextID: 1}
}

func ownerSummary(ownerID int64) model.OwnerSummary {
	return model.OwnerSummary{ID: ownerID, Name: "Dono", Email: "dono@example.com"}
}

func (m *mockItemRepo) seed(it model.Item) model.Item {
	if it.ID == 0 {
		it.ID = m.nextID
		m.nextID++
	} else if it.ID >= m.nextID {
		m.nextID = it.ID + 1
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now()
	}
	it.Owner = ownerSummary(it.OwnerID)
	m.items[it.ID] = it
	return it
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	if m.createErr != nil {
		return model.Item{}, m.createErr
	}
	return m.seed(model.Item{
		Title:       opt.Title,
		Description: opt.Description,
		Price:       opt.Price,
		ImageURL:    opt.ImageURL,
		Status:      opt.Status,
		Available:   opt.Available,
		OwnerID:     opt.OwnerID,
	}), nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	if m.getErr != nil {
		return model.Item{}, m.getErr
	}
	it, ok := m.items[opt.ID]
	if !ok {
		return model.Item{}, nil
	}
	if opt.OwnerID != 0 && it.OwnerID != opt.OwnerID {
		return model.Item{}, nil
	}
	return it, nil
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var items []model.Item
	for _, it := range m.items {
		if opt.Status != "" && it.Status != opt.Status {
			continue
		}
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	if m.updateErr != nil {
		return model.Item{}, m.updateErr
	}
	it, ok := m.items[opt.ID]
	if !ok {
		return model.Item{}, nil
	}
	if m.raceTo != "" {
		it.Status = m.raceTo
		it.Available = model.AvailableFor(m.raceTo)
		m.items[opt.ID] = it
	}
	if opt.FromStatus != nil && it.Status != *opt.FromStatus {
		return model.Item{}, nil
	}
	if opt.Title != nil {
		it.Title = *opt.Title
	}
	if opt.Description != nil {
		it.Description = *opt.Description
	}
	if opt.Price != nil {
		it.Price = *opt.Price
	}
	if opt.ImageURL != nil {
		it.ImageURL = *opt.ImageURL
	}
	if opt.Status != nil {
		it.Status = *opt.Status
	}
	if opt.Available != nil {
		it.Available = *opt.Available
	}
	it.UpdatedAt = time.Now()
	m.items[opt.ID] = it
	return it, nil
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.items, id)
	return nil
}
