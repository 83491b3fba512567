package usecase

import (
	"context"

	"desapega-api/internal/item"
	repo "desapega-api/internal/item/repository"
	"desapega-api/internal/model"
)

// Update applies a partial, owner-gated update. Ownership is checked before
// any field validation runs. A status change must satisfy the transition
// table; available is recomputed from the new status.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateItemInput) (item.ItemOutput, error) {
	if err := validateID(input.ID); err != nil {
		return item.ItemOutput{}, err
	}
	if err := validateID(sc.UserID); err != nil {
		return item.ItemOutput{}, err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.ItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.ItemOutput{}, item.ErrItemNotFound
	}
	if existing.OwnerID != sc.UserID {
		return item.ItemOutput{}, item.ErrForbidden
	}

	if err := validateUpdateInput(&input); err != nil {
		return item.ItemOutput{}, err
	}

	opt := repo.UpdateItemOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}

	if input.Status != nil {
		if !model.CanTransition(existing.Status, *input.Status) {
			return item.ItemOutput{}, &model.InvalidTransitionError{
				From: existing.Status,
				To:   *input.Status,
			}
		}
		available := model.AvailableFor(*input.Status)
		from := existing.Status
		opt.Status = input.Status
		opt.Available = &available
		opt.FromStatus = &from
	}

	updated, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.ItemOutput{}, err
	}
	if updated.ID == 0 {
		// A concurrent writer moved the status between our read and write.
		return item.ItemOutput{}, item.ErrStatusConflict
	}

	return item.ItemOutput{Item: updated}, nil
}
