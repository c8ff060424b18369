package models

import (
	"fmt"
	"time"
)

type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    *int       `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UserID      int64      `json:"user_id"`
	Links       *TaskLinks `json:"links,omitempty"`
}

type TaskLinks struct {
	Self     string `json:"self"`
	Complete string `json:"complete"`
}

// FillLinks attaches the hyperlink references derived from the task id.
func (t *Task) FillLinks() {
	t.Links = &TaskLinks{
		Self:     fmt.Sprintf("/tasks/%d", t.ID),
		Complete: fmt.Sprintf("/tasks/%d/complete", t.ID),
	}
}

// PageMeta describes one page of a list result. Total counts every matching
// row regardless of the requested page.
type PageMeta struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type TaskPage struct {
	Meta  PageMeta `json:"meta"`
	Items []Task   `json:"items"`
}
