package httpapi

import (
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

const dateLayout = "2006-01-02"

type errorResponse struct {
	Detail string `json:"detail"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type taskCreateRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	ScheduledDate *string `json:"scheduled_date"`
}

type taskUpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ScheduledDate *string `json:"scheduled_date"`
}

type taskResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Completed     bool      `json:"completed"`
	ScheduledDate *string   `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type rootResponse struct {
	Message string `json:"message"`
	Health  string `json:"health"`
}

func toTaskResponse(t *models.Task) taskResponse {
	var date *string
	if t.ScheduledDate != nil {
		formatted := t.ScheduledDate.Format(dateLayout)
		date = &formatted
	}
	return taskResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		Title:         t.Title,
		Description:   t.Description,
		Completed:     t.Completed,
		ScheduledDate: date,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
