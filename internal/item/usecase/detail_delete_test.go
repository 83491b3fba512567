package usecase_test

import (
	"context"
	"testing"

	"desapega-api/internal/item"
	"desapega-api/internal/item/usecase"
	"desapega-api/internal/model"
)

func TestDetail(t *testing.T) {
	ctx := context.Background()
	repo := newMockItemRepo()
	uc := usecase.New(repo, &mockLogger{})
	seeded := seedAvailableItem(repo, 1)

	out, err := uc.Detail(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Item.ID != seeded.ID {
		t.Errorf("expected id %d, got %d", seeded.ID, out.Item.ID)
	}
	if out.Item.Owner.Email == "" {
		t.Error("expected enriched owner projection")
	}
}

func TestDetailNotFound(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(newMockItemRepo(), &mockLogger{})

	_, err := uc.Detail(ctx, 404)
	if err != item.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDetailInvalidID(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(newMockItemRepo(), &mockLogger{})

	for _, id := range []int64{0, -1} {
		if _, err := uc.Detail(ctx, id); err != item.ErrInvalidID {
			t.Errorf("id %d: expected ErrInvalidID, got %v", id, err)
		}
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := newMockItemRepo()
	uc := usecase.New(repo, &mockLogger{})
	seedAvailableItem(repo, 1)
	seedAvailableItem(repo, 2)

	out, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(out.Items))
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMockItemRepo()
	uc := usecase.New(repo, &mockLogger{})
	seeded := seedAvailableItem(repo, 1)

	if err := uc.Delete(ctx, model.Scope{UserID: 1}, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := uc.Detail(ctx, seeded.ID); err != item.ErrItemNotFound {
		t.Errorf("expected item gone, got %v", err)
	}
}

func TestDeleteForbidden(t *testing.T) {
	ctx := context.Background()
	repo := newMockItemRepo()
	uc := usecase.New(repo, &mockLogger{})
	seeded := seedAvailableItem(repo, 1)

	if err := uc.Delete(ctx, model.Scope{UserID: 2}, seeded.ID); err != item.ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(newMockItemRepo(), &mockLogger{})

	if err := uc.Delete(ctx, model.Scope{UserID: 1}, 9); err != item.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
