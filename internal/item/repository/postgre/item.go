package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "desapega-api/internal/item/repository"
	"desapega-api/internal/model"
)

// selectBase reads items enriched with the owner projection.
const selectBase = `
	SELECT i.id, i.title, i.description, i.price, i.available, i.status,
	       i.image_url, i.owner_id, i.created_at, i.updated_at,
	       u.id, u.name, u.email
	FROM items i
	JOIN users u ON u.id = i.owner_id`

// scanItem scans one enriched row.
func scanItem(row interface{ Scan(...any) error }) (model.Item, error) {
	var item model.Item
	var imageURL sql.NullString
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Price, &item.Available,
		&item.Status, &imageURL, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
		&item.Owner.ID, &item.Owner.Name, &item.Owner.Email,
	)
	if err != nil {
		return model.Item{}, err
	}
	item.ImageURL = imageURL.String
	return item, nil
}

// CreateItem inserts a new Item row and returns the enriched entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (title, description, price, available, status, image_url, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NOW(), NOW())
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Price, opt.Available, opt.Status, opt.ImageURL, opt.OwnerID,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns zero-value Item (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", selectBase, mods)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns all matching Items in the requested order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("%s %s", selectBase, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem applies a partial update and returns the enriched updated
// entity. When opt.FromStatus is set the write is a compare-and-swap on
// status; a matched-no-rows result returns a zero-value Item with no error,
// same convention as GetOneItem.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	set, where, args := r.buildUpdateQuery(opt, time.Now())
	query := fmt.Sprintf("UPDATE items SET %s WHERE %s RETURNING id", set, where)

	var id int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
}

// DeleteItem permanently removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
