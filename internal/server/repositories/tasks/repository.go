package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// UpdateParams carries the optional fields of a partial update. A nil field
// leaves the stored value untouched. Completed is deliberately absent:
// updates never change it, only ToggleComplete does.
type UpdateParams struct {
	Title         *string
	Description   *string
	ScheduledDate *time.Time
}

// Repository is the task store. Every method that touches an existing row
// takes the owning userID and applies it inside the same query that locates
// the row, so ownership mismatch and nonexistence are indistinguishable
// (both common.ErrorNotFound).
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, userID, taskID string) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, userID, taskID string, params UpdateParams) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
	ToggleComplete(ctx context.Context, userID, taskID string) (*models.Task, error)
}
