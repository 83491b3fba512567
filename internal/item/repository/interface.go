package repository

import (
	"context"

	"desapega-api/internal/model"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Every read returns records enriched with the owner projection.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
