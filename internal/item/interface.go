package item

import (
	"context"

	"desapega-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Listing CRUD
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (ItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id int64) (ItemOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (ItemOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error

	// Lifecycle actions
	UpdateStatus(ctx context.Context, sc model.Scope, id int64, newStatus model.ItemStatus) (ItemOutput, error)
	Reserve(ctx context.Context, sc model.Scope, id int64) (ItemOutput, error)
	Buy(ctx context.Context, sc model.Scope, id int64) (ItemOutput, error)
}
