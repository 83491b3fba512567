package item

import "desapega-api/internal/model"

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string

	// Status defaults to DISPONIVEL when empty; Available defaults to the
	// value implied by Status when nil.
	Status    model.ItemStatus
	Available *bool
}

// UpdateItemInput carries partial update fields: nil pointers are left
// untouched on the stored record.
type UpdateItemInput struct {
	ID          int64
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
	Status      *model.ItemStatus
}

// --- UseCase Outputs ---

type ItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	Items []model.Item
}
