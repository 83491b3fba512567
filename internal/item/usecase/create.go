package usecase

import (
	"context"

	"desapega-api/internal/item"
	repo "desapega-api/internal/item/repository"
	"desapega-api/internal/model"
)

// Create validates the listing data and persists a new Item owned by the
// acting user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateItemInput) (item.ItemOutput, error) {
	if err := validateID(sc.UserID); err != nil {
		return item.ItemOutput{}, err
	}
	if err := validateCreateInput(&input); err != nil {
		return item.ItemOutput{}, err
	}

	status := input.Status
	if status == "" {
		status = model.StatusDisponivel
	}
	available := model.AvailableFor(status)
	if input.Available != nil {
		available = *input.Available
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Status:      status,
		Available:   available,
		OwnerID:     sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.ItemOutput{}, err
	}

	return item.ItemOutput{Item: created}, nil
}
