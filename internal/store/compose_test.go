package store

import (
	"reflect"
	"testing"

	"github.com/yoftil7/task-api/internal/validate"
)

func listParams(page, perPage int, sortBy, sortOrder string) validate.ListParams {
	return validate.ListParams{Page: page, PerPage: perPage, SortBy: sortBy, SortOrder: sortOrder}
}

func TestBuildListQueryOwnerOnly(t *testing.T) {
	q := BuildListQuery(42, listParams(1, 10, "id", "asc"))

	wantSelect := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3"
	if q.SelectSQL != wantSelect {
		t.Errorf("select:\n got %q\nwant %q", q.SelectSQL, wantSelect)
	}
	if !reflect.DeepEqual(q.SelectArgs, []any{int64(42), 10, 0}) {
		t.Errorf("select args = %v", q.SelectArgs)
	}
	if q.CountSQL != "SELECT COUNT(*) FROM tasks WHERE user_id = $1" {
		t.Errorf("count: %q", q.CountSQL)
	}
	if !reflect.DeepEqual(q.CountArgs, []any{int64(42)}) {
		t.Errorf("count args = %v", q.CountArgs)
	}
}

func TestBuildListQueryCompletedFilter(t *testing.T) {
	completed := true
	params := listParams(2, 5, "created_at", "desc")
	params.Completed = &completed

	q := BuildListQuery(7, params)

	wantSelect := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1 AND completed = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4"
	if q.SelectSQL != wantSelect {
		t.Errorf("select:\n got %q\nwant %q", q.SelectSQL, wantSelect)
	}
	if !reflect.DeepEqual(q.SelectArgs, []any{int64(7), true, 5, 5}) {
		t.Errorf("select args = %v", q.SelectArgs)
	}
	if !reflect.DeepEqual(q.CountArgs, []any{int64(7), true}) {
		t.Errorf("count args = %v", q.CountArgs)
	}
}

func TestBuildListQueryOffsets(t *testing.T) {
	cases := []struct {
		page, perPage int
		offset        int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
		{1, 1, 0},
	}
	for _, tc := range cases {
		q := BuildListQuery(1, listParams(tc.page, tc.perPage, "id", "asc"))
		got := q.SelectArgs[len(q.SelectArgs)-1]
		if got != tc.offset {
			t.Errorf("page=%d per_page=%d: offset = %v, want %d", tc.page, tc.perPage, got, tc.offset)
		}
	}
}

func TestBuildListQueryRejectsUnknownColumn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unvalidated sort column")
		}
	}()
	BuildListQuery(1, listParams(1, 10, "password_hash", "asc"))
}

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name          string
		page, perPage int
		total         int
		pages         int
		hasNext       bool
		hasPrev       bool
	}{
		{"empty collection", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 10, 5, 1, false, false},
		{"exact fit", 1, 10, 10, 1, false, false},
		{"fifteen rows page one", 1, 10, 15, 2, true, false},
		{"fifteen rows page two", 2, 10, 15, 2, false, true},
		{"middle page", 2, 10, 30, 3, true, true},
		{"per_page one", 3, 1, 3, 3, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPageMeta(tc.page, tc.perPage, tc.total)
			if meta.Pages != tc.pages {
				t.Errorf("pages = %d, want %d", meta.Pages, tc.pages)
			}
			if meta.HasNext != tc.hasNext {
				t.Errorf("has_next = %v, want %v", meta.HasNext, tc.hasNext)
			}
			if meta.HasPrev != tc.hasPrev {
				t.Errorf("has_prev = %v, want %v", meta.HasPrev, tc.hasPrev)
			}
			if meta.Total != tc.total || meta.Page != tc.page || meta.PerPage != tc.perPage {
				t.Errorf("echoed fields wrong: %+v", meta)
			}
		})
	}
}
