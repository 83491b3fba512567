package postgre

import (
	"fmt"
	"strings"

	repo "desapega-api/internal/user/repository"
)

// buildGetOneQuery builds the WHERE clause and args for GetOneUser.
// Falls back to a never-matching condition when no filter is set.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []interface{}) {
	conds := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if opt.ID > 0 {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "FALSE")
	}

	return strings.Join(conds, " AND "), args
}
