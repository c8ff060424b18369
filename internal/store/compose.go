package store

import (
	"fmt"

	"github.com/yoftil7/task-api/internal/models"
	"github.com/yoftil7/task-api/internal/validate"
)

const taskColumns = "id, description, completed, priority, created_at, updated_at, user_id"

// sortColumns whitelists the sortable columns; the composer never
// interpolates caller input into SQL.
var sortColumns = map[string]string{
	"id":          "id",
	"priority":    "priority",
	"created_at":  "created_at",
	"description": "description",
}

// ListQuery is a deterministic, bounded plan for one page of a task list.
// The owner predicate always comes first; the completed filter is added only
// when requested.
type ListQuery struct {
	SelectSQL  string
	SelectArgs []any
	CountSQL   string
	CountArgs  []any
}

// BuildListQuery composes the page query for validated parameters. SortBy has
// already been checked against the whitelist by the validation layer; an
// unknown column here is a programming error.
func BuildListQuery(owner int64, p validate.ListParams) ListQuery {
	column, ok := sortColumns[p.SortBy]
	if !ok {
		panic(fmt.Sprintf("store: unsortable column %q", p.SortBy))
	}
	direction := "ASC"
	if p.SortOrder == "desc" {
		direction = "DESC"
	}

	where := "WHERE user_id = $1"
	args := []any{owner}
	if p.Completed != nil {
		where += " AND completed = $2"
		args = append(args, *p.Completed)
	}

	countArgs := make([]any, len(args))
	copy(countArgs, args)

	offset := (p.Page - 1) * p.PerPage
	selectSQL := fmt.Sprintf(
		"SELECT %s FROM tasks %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		taskColumns, where, column, direction, len(args)+1, len(args)+2)

	return ListQuery{
		SelectSQL:  selectSQL,
		SelectArgs: append(args, p.PerPage, offset),
		CountSQL:   "SELECT COUNT(*) FROM tasks " + where,
		CountArgs:  countArgs,
	}
}

// NewPageMeta derives the pagination metadata for a page request. Pages is
// ceil(total/perPage), zero when nothing matches.
func NewPageMeta(page, perPage, total int) models.PageMeta {
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return models.PageMeta{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
