package usecase

import (
	"context"

	"desapega-api/internal/item"
	repo "desapega-api/internal/item/repository"
	"desapega-api/internal/model"
)

// Delete permanently removes an Item. Owner-gated; there is no recovery path.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateID(sc.UserID); err != nil {
		return err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == 0 {
		return item.ErrItemNotFound
	}
	if existing.OwnerID != sc.UserID {
		return item.ErrForbidden
	}

	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
