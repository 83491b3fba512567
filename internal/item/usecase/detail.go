package usecase

import (
	"context"

	"desapega-api/internal/item"
	repo "desapega-api/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.ItemOutput, error) {
	if err := validateID(id); err != nil {
		return item.ItemOutput{}, err
	}

	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.ItemOutput{}, err
	}
	if found.ID == 0 {
		return item.ItemOutput{}, item.ErrItemNotFound
	}

	return item.ItemOutput{Item: found}, nil
}
