package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yoftil7/task-api/internal/models"
	"github.com/yoftil7/task-api/internal/validate"
)

// CreateTask inserts a task owned by task.UserID and fills the generated id
// and timestamps.
func CreateTask(ctx context.Context, tx *sql.Tx, task *models.Task) error {
	row := tx.QueryRowContext(ctx, `
		INSERT INTO tasks (description, completed, priority, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		task.Description, task.Completed, task.Priority, task.UserID)
	return row.Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

// GetTask looks a task up by id within the owner scope. A task belonging to
// another user is ErrNotFound, indistinguishable from a missing one.
func GetTask(ctx context.Context, tx *sql.Tx, id, owner int64) (*models.Task, error) {
	row := tx.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND user_id = $2", id, owner)
	return scanTask(row)
}

// UpdateTask writes the mutable fields back within the owner scope and
// refreshes updated_at.
func UpdateTask(ctx context.Context, tx *sql.Tx, task *models.Task) error {
	row := tx.QueryRowContext(ctx, `
		UPDATE tasks
		SET description = $1, completed = $2, priority = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at`,
		task.Description, task.Completed, task.Priority, task.ID, task.UserID)

	err := row.Scan(&task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// CompleteTask sets completed=true within the owner scope. Completing an
// already-completed task is a no-op that still succeeds.
func CompleteTask(ctx context.Context, tx *sql.Tx, id, owner int64) (*models.Task, error) {
	row := tx.QueryRowContext(ctx, `
		UPDATE tasks
		SET completed = TRUE, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+taskColumns, id, owner)
	return scanTask(row)
}

// DeleteTask removes a task within the owner scope.
func DeleteTask(ctx context.Context, tx *sql.Tx, id, owner int64) error {
	result, err := tx.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, owner)
	return deleted(result, err)
}

// DeleteTaskAnyOwner removes a task regardless of owner. Admin use only; the
// role check happens before the handler runs.
func DeleteTaskAnyOwner(ctx context.Context, tx *sql.Tx, id int64) error {
	result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	return deleted(result, err)
}

// ListTasks executes the composed page query and returns the page items plus
// the total match count across all pages.
func ListTasks(ctx context.Context, tx *sql.Tx, owner int64, params validate.ListParams) ([]models.Task, int, error) {
	query := BuildListQuery(owner, params)

	total := 0
	if err := tx.QueryRowContext(ctx, query.CountSQL, query.CountArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := tx.QueryContext(ctx, query.SelectSQL, query.SelectArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]models.Task, 0)
	for rows.Next() {
		task := models.Task{}
		err = rows.Scan(&task.ID, &task.Description, &task.Completed, &task.Priority,
			&task.CreatedAt, &task.UpdatedAt, &task.UserID)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, task)
	}
	return items, total, rows.Err()
}

// DashboardStats are the aggregate counts behind the admin dashboard.
type DashboardStats struct {
	Users          int `json:"users"`
	Tasks          int `json:"tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OpenTasks      int `json:"open_tasks"`
}

func Dashboard(ctx context.Context, tx *sql.Tx) (*DashboardStats, error) {
	stats := &DashboardStats{}
	row := tx.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			COUNT(*),
			COUNT(*) FILTER (WHERE completed),
			COUNT(*) FILTER (WHERE NOT completed)
		FROM tasks`)
	err := row.Scan(&stats.Users, &stats.Tasks, &stats.CompletedTasks, &stats.OpenTasks)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// UserTaskSummary is one row of the per-user completion report.
type UserTaskSummary struct {
	Username  string `json:"username"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

func TaskReport(ctx context.Context, tx *sql.Tx) ([]UserTaskSummary, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT u.username, COUNT(t.id), COUNT(t.id) FILTER (WHERE t.completed)
		FROM users u
		LEFT JOIN tasks t ON t.user_id = u.id
		GROUP BY u.username
		ORDER BY u.username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]UserTaskSummary, 0)
	for rows.Next() {
		summary := UserTaskSummary{}
		if err := rows.Scan(&summary.Username, &summary.Total, &summary.Completed); err != nil {
			return nil, err
		}
		report = append(report, summary)
	}
	return report, rows.Err()
}

func scanTask(row *sql.Row) (*models.Task, error) {
	task := &models.Task{}
	err := row.Scan(&task.ID, &task.Description, &task.Completed, &task.Priority,
		&task.CreatedAt, &task.UpdatedAt, &task.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func deleted(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
