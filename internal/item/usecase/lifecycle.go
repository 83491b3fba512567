package usecase

import (
	"context"

	"desapega-api/internal/item"
	repo "desapega-api/internal/item/repository"
	"desapega-api/internal/model"
)

// UpdateStatus is the owner-gated status change. The status value is checked
// before existence and ownership; the transition table is applied last.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, id int64, newStatus model.ItemStatus) (item.ItemOutput, error) {
	if !model.ValidStatus(newStatus) {
		return item.ItemOutput{}, item.ErrInvalidStatus
	}
	if err := validateID(id); err != nil {
		return item.ItemOutput{}, err
	}
	if err := validateID(sc.UserID); err != nil {
		return item.ItemOutput{}, err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus GetOneItem: %v", err)
		return item.ItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.ItemOutput{}, item.ErrItemNotFound
	}
	if existing.OwnerID != sc.UserID {
		return item.ItemOutput{}, item.ErrForbidden
	}

	if !model.CanTransition(existing.Status, newStatus) {
		return item.ItemOutput{}, &model.InvalidTransitionError{
			From: existing.Status,
			To:   newStatus,
		}
	}

	updated, err := uc.writeStatus(ctx, id, existing.Status, newStatus)
	if err != nil {
		return item.ItemOutput{}, err
	}
	return item.ItemOutput{Item: updated}, nil
}

// Reserve holds an available item for the acting user. NOT owner-gated:
// any authenticated user except the owner may reserve.
func (uc *implUseCase) Reserve(ctx context.Context, sc model.Scope, id int64) (item.ItemOutput, error) {
	if err := validateID(id); err != nil {
		return item.ItemOutput{}, err
	}
	if err := validateID(sc.UserID); err != nil {
		return item.ItemOutput{}, err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reserve GetOneItem: %v", err)
		return item.ItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.ItemOutput{}, item.ErrItemNotFound
	}
	if existing.OwnerID == sc.UserID {
		return item.ItemOutput{}, item.ErrSelfReserve
	}
	if existing.Status != model.StatusDisponivel {
		return item.ItemOutput{}, item.ErrItemNotAvailable
	}

	updated, err := uc.writeStatus(ctx, id, existing.Status, model.StatusReservado)
	if err != nil {
		if err == item.ErrStatusConflict {
			// Another user reserved or bought it first.
			return item.ItemOutput{}, item.ErrItemNotAvailable
		}
		return item.ItemOutput{}, err
	}
	return item.ItemOutput{Item: updated}, nil
}

// Buy completes the exchange. NOT owner-gated; legal from both DISPONIVEL
// and RESERVADO. A reservation does not grant the reserver exclusivity.
func (uc *implUseCase) Buy(ctx context.Context, sc model.Scope, id int64) (item.ItemOutput, error) {
	if err := validateID(id); err != nil {
		return item.ItemOutput{}, err
	}
	if err := validateID(sc.UserID); err != nil {
		return item.ItemOutput{}, err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Buy GetOneItem: %v", err)
		return item.ItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.ItemOutput{}, item.ErrItemNotFound
	}
	if existing.OwnerID == sc.UserID {
		return item.ItemOutput{}, item.ErrSelfPurchase
	}
	if existing.Status != model.StatusDisponivel && existing.Status != model.StatusReservado {
		return item.ItemOutput{}, item.ErrItemNotPurchasable
	}

	updated, err := uc.writeStatus(ctx, id, existing.Status, model.StatusDoadoVendido)
	if err != nil {
		if err == item.ErrStatusConflict {
			return item.ItemOutput{}, item.ErrItemNotPurchasable
		}
		return item.ItemOutput{}, err
	}
	return item.ItemOutput{Item: updated}, nil
}

// writeStatus performs the compare-and-swap status write shared by every
// lifecycle mutation, keeping available consistent with the new status.
func (uc *implUseCase) writeStatus(ctx context.Context, id int64, from, to model.ItemStatus) (model.Item, error) {
	available := model.AvailableFor(to)
	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:         id,
		Status:     &to,
		Available:  &available,
		FromStatus: &from,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.writeStatus UpdateItem: %v", err)
		return model.Item{}, err
	}
	if updated.ID == 0 {
		return model.Item{}, item.ErrStatusConflict
	}
	return updated, nil
}
