package repository

import "desapega-api/internal/model"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string
	Status      model.ItemStatus
	Available   bool
	OwnerID     int64
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-zero fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID      int64
	OwnerID int64
}

// ListItemsOptions holds filter and ordering parameters for listing Items.
type ListItemsOptions struct {
	Status  model.ItemStatus
	OwnerID int64
	OrderBy string
}

// UpdateItemOptions holds parameters for a partial update. Nil pointers are
// excluded from the SET clause. When FromStatus is set, the write is
// conditioned on the row still holding that status (compare-and-swap): a
// concurrent status change makes the update match no rows.
type UpdateItemOptions struct {
	ID          int64
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
	Status      *model.ItemStatus
	Available   *bool

	FromStatus *model.ItemStatus
}
