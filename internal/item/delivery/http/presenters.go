package http

import (
	"desapega-api/internal/item"
	"desapega-api/internal/model"
	"desapega-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Status      string  `json:"status"`
	Available   *bool   `json:"available"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Status:      model.ItemStatus(r.Status),
		Available:   r.Available,
	}
}

// ---

type updateReq struct {
	ID          int64    `json:"-"` // populated from URI param
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Status      *string  `json:"status"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	input := item.UpdateItemInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
	if r.Status != nil {
		status := model.ItemStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ---

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type ownerResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type itemResp struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Available   bool              `json:"available"`
	Status      string            `json:"status"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	OwnerID     int64             `json:"ownerId"`
	CreatedAt   response.DateTime `json:"createdAt"`
	UpdatedAt   response.DateTime `json:"updatedAt"`
	Owner       ownerResp         `json:"owner"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Price:       it.Price,
		Available:   it.Available,
		Status:      string(it.Status),
		ImageURL:    it.ImageURL,
		OwnerID:     it.OwnerID,
		CreatedAt:   response.DateTime(it.CreatedAt),
		UpdatedAt:   response.DateTime(it.UpdatedAt),
		Owner: ownerResp{
			ID:    it.Owner.ID,
			Name:  it.Owner.Name,
			Email: it.Owner.Email,
		},
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items}
}

type deleteResp struct {
	Message string `json:"message"`
}
