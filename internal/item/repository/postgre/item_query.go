package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "desapega-api/internal/item/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
// All non-zero fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "i.created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds SET + WHERE clauses for a partial update. Only
// non-nil fields enter the SET clause; FromStatus extends the WHERE clause
// with the compare-and-swap guard.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateItemOptions, now time.Time) (string, string, []any) {
	var sets []string
	var args []any
	idx := 1

	if opt.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", idx))
		args = append(args, *opt.Title)
		idx++
	}
	if opt.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", idx))
		args = append(args, *opt.Description)
		idx++
	}
	if opt.Price != nil {
		sets = append(sets, fmt.Sprintf("price = $%d", idx))
		args = append(args, *opt.Price)
		idx++
	}
	if opt.ImageURL != nil {
		sets = append(sets, fmt.Sprintf("image_url = NULLIF($%d, '')", idx))
		args = append(args, *opt.ImageURL)
		idx++
	}
	if opt.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", idx))
		args = append(args, *opt.Status)
		idx++
	}
	if opt.Available != nil {
		sets = append(sets, fmt.Sprintf("available = $%d", idx))
		args = append(args, *opt.Available)
		idx++
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", idx))
	args = append(args, now)
	idx++

	conditions := []string{fmt.Sprintf("id = $%d", idx)}
	args = append(args, opt.ID)
	idx++

	if opt.FromStatus != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, *opt.FromStatus)
	}

	return strings.Join(sets, ", "), strings.Join(conditions, " AND "), args
}
