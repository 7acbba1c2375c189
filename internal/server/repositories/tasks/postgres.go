// Package tasks provides the PostgreSQL-backed repository for task
// persistence. All lookups of existing rows are dual-filtered by task id and
// owner id in a single statement, which keeps the ownership check atomic with
// the mutation it guards.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a task owned by task.UserID and fills in the generated
// fields. The caller is responsible for binding UserID to the authenticated
// identity.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (user_id, title, description, scheduled_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, completed, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.ScheduledDate).
		Scan(&task.ID, &task.Completed, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// GetByID returns the task taskID owned by userID, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, taskID string) (*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, scheduled_date, completed, created_at, updated_at FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.ScheduledDate, &task.Completed, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// ListByUser returns all tasks owned by userID, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, scheduled_date, completed, created_at, updated_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description,
			&item.ScheduledDate, &item.Completed, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update applies a partial update: nil params keep the stored values
// (COALESCE), the completed flag is never touched, updated_at is refreshed.
func (r *PostgresRepository) Update(ctx context.Context, userID, taskID string, params UpdateParams) (*models.Task, error) {
	query :=
		`UPDATE tasks
		 SET title = COALESCE($3, title),
		     description = COALESCE($4, description),
		     scheduled_date = COALESCE($5, scheduled_date),
		     updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, scheduled_date, completed, created_at, updated_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query,
		taskID, userID, params.Title, params.Description, params.ScheduledDate).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.ScheduledDate, &task.Completed, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the task taskID owned by userID. Deleting an absent or
// foreign row yields common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// ToggleComplete flips the completed flag unconditionally and refreshes
// updated_at, returning the new row state.
func (r *PostgresRepository) ToggleComplete(ctx context.Context, userID, taskID string) (*models.Task, error) {
	query :=
		`UPDATE tasks
		 SET completed = NOT completed,
		     updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, scheduled_date, completed, created_at, updated_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.ScheduledDate, &task.Completed, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}
