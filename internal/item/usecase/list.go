package usecase

import (
	"context"

	"desapega-api/internal/item"
	repo "desapega-api/internal/item/repository"
)

// List returns every listing, newest first, enriched with owner projections.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OrderBy: "i.created_at DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{Items: items}, nil
}
