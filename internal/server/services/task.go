package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tasks"
)

// TaskService provides per-user task operations. The userID argument is the
// authenticated subject, threaded explicitly from token verification; every
// repository call filters by it inside the locating query, so an
// ownership mismatch is indistinguishable from a missing row
// (common.ErrorNotFound in both cases).
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	dbTimeout   time.Duration
}

// NewTaskService constructs a TaskService using repositories and server config.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
		dbTimeout:   cfg.DBTimeout,
	}
}

// opCtx bounds a store call so a stuck connection cannot hang the request.
func (s *TaskService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.dbTimeout)
}

// Create stores a new task owned by userID. The owner always comes from the
// authenticated identity, never from request payload.
func (s *TaskService) Create(ctx context.Context, userID, title string, description *string, scheduledDate *time.Time) (*models.Task, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	task := &models.Task{
		UserID:        userID,
		Title:         title,
		Description:   description,
		ScheduledDate: scheduledDate,
	}

	task, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, storeErr(err)
	}
	return task, nil
}

// List returns all tasks owned by userID.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	result, err := s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return result, nil
}

// Get returns the task taskID if owned by userID.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*models.Task, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	task, err := s.repomanager.Tasks(s.db).GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, storeErr(err)
	}
	return task, nil
}

// Update applies a partial update to the task taskID if owned by userID.
// The completed flag is never changed here.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, params tasks.UpdateParams) (*models.Task, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	task, err := s.repomanager.Tasks(s.db).Update(ctx, userID, taskID, params)
	if err != nil {
		return nil, storeErr(err)
	}
	return task, nil
}

// Delete removes the task taskID if owned by userID.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.repomanager.Tasks(s.db).Delete(ctx, userID, taskID); err != nil {
		return storeErr(err)
	}
	return nil
}

// ToggleComplete flips the completed flag of the task taskID if owned by
// userID and returns the new state.
func (s *TaskService) ToggleComplete(ctx context.Context, userID, taskID string) (*models.Task, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	task, err := s.repomanager.Tasks(s.db).ToggleComplete(ctx, userID, taskID)
	if err != nil {
		return nil, storeErr(err)
	}
	return task, nil
}
