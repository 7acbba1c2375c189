package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// ---- fakes ----

type fakeUserRepo struct {
	getResp *models.User
	getErr  error

	createResp *models.User
	createErr  error

	gotEmail   string
	gotCreated *models.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.gotEmail = email
	return f.getResp, f.getErr
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.gotCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResp != nil {
		return f.createResp, nil
	}
	u.ID = "u-new"
	u.CreatedAt = time.Now()
	return u, nil
}

type fakeTaskRepo struct {
	task    *models.Task
	list    []*models.Task
	err     error
	listErr error

	gotUserID string
	gotTaskID string
	gotParams tasks.UpdateParams
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	f.gotUserID = t.UserID
	if f.err != nil {
		return nil, f.err
	}
	t.ID = "t-new"
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return t, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, userID, taskID string) (*models.Task, error) {
	f.gotUserID, f.gotTaskID = userID, taskID
	return f.task, f.err
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	f.gotUserID = userID
	return f.list, f.listErr
}

func (f *fakeTaskRepo) Update(ctx context.Context, userID, taskID string, params tasks.UpdateParams) (*models.Task, error) {
	f.gotUserID, f.gotTaskID, f.gotParams = userID, taskID, params
	return f.task, f.err
}

func (f *fakeTaskRepo) Delete(ctx context.Context, userID, taskID string) error {
	f.gotUserID, f.gotTaskID = userID, taskID
	return f.err
}

func (f *fakeTaskRepo) ToggleComplete(ctx context.Context, userID, taskID string) (*models.Task, error) {
	f.gotUserID, f.gotTaskID = userID, taskID
	return f.task, f.err
}

type fakeManager struct {
	users *fakeUserRepo
	tasks *fakeTaskRepo
}

func (m *fakeManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeManager) Users(db dbx.DBTX) users.Repository                  { return m.users }
func (m *fakeManager) Tasks(db dbx.DBTX) tasks.Repository                  { return m.tasks }
