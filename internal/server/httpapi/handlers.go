package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tasks"
)

const (
	serviceName    = "todokeeper"
	serviceVersion = "1.0.0"
)

func (s *HTTPServer) root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{Message: "TodoKeeper API", Health: "/health"})
}

func (s *HTTPServer) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "healthy", Service: serviceName, Version: serviceVersion})
}

func (s *HTTPServer) signup(c echo.Context) error {

	ctx := c.Request().Context()

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
	}

	if err := validateEmail(req.Email); err != nil {
		return writeError(c, err)
	}
	if err := validatePassword(req.Password); err != nil {
		return writeError(c, err)
	}

	user, err := s.users.Signup(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "signup failed", "error", err.Error())
		return writeError(c, err)
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID)
	return c.JSON(http.StatusCreated, signupResponse{
		UserID:  user.ID,
		Email:   user.Email,
		Message: "Account created successfully",
	})
}

func (s *HTTPServer) login(c echo.Context) error {

	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
	}

	user, token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "error", err.Error())
		return writeError(c, err)
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return c.JSON(http.StatusOK, loginResponse{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	})
}

// authorize verifies the bearer token and checks that the path user_id
// matches the token subject. It returns the verified subject, which the
// handler then passes down explicitly; the handler never trusts the path
// value for anything beyond this comparison.
func (s *HTTPServer) authorize(c echo.Context) (string, error) {
	raw, err := bearerTokenFromHeader(c.Request().Header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	claims, err := auth.ParseToken(raw, s.jwtSecret)
	if err != nil {
		return "", err
	}

	if c.Param("user_id") != claims.Subject {
		return "", common.ErrorForbidden
	}

	return claims.Subject, nil
}

func (s *HTTPServer) listTasks(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := s.authorize(c)
	if err != nil {
		s.logger.Warn(ctx, "access denied", "error", err.Error())
		return writeError(c, err)
	}

	result, err := s.tasks.List(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "list tasks failed", "error", err.Error())
		return writeError(c, err)
	}

	resp := make([]taskResponse, 0, len(result))
	for _, t := range result {
		resp = append(resp, toTaskResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) createTask(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := s.authorize(c)
	if err != nil {
		s.logger.Warn(ctx, "access denied", "error", err.Error())
		return writeError(c, err)
	}

	var req taskCreateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
	}
	if err := validateTitle(req.Title); err != nil {
		return writeError(c, err)
	}
	scheduledDate, err := parseDate(req.ScheduledDate)
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.Create(ctx, userID, req.Title, req.Description, scheduledDate)
	if err != nil {
		s.logger.Error(ctx, "create task failed", "error", err.Error())
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (s *HTTPServer) getTask(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := s.authorize(c)
	if err != nil {
		s.logger.Warn(ctx, "access denied", "error", err.Error())
		return writeError(c, err)
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.Get(ctx, userID, taskID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

func (s *HTTPServer) updateTask(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := s.authorize(c)
	if err != nil {
		s.logger.Warn(ctx, "access denied", "error", err.Error())
		return writeError(c, err)
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	var req taskUpdateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return writeError(c, err)
		}
	}
	scheduledDate, err := parseDate(req.ScheduledDate)
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.Update(ctx, userID, taskID, tasks.UpdateParams{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: scheduledDate,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

func (s *HTTPServer) deleteTask(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := s.authorize(c)
	if err != nil {
		s.logger.Warn(ctx, "access denied", "error", err.Error())
		return writeError(c, err)
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) toggleTask(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := s.authorize(c)
	if err != nil {
		s.logger.Warn(ctx, "access denied", "error", err.Error())
		return writeError(c, err)
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	task, err := s.tasks.ToggleComplete(ctx, userID, taskID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// taskIDParam validates the task_id path segment. A malformed id maps to
// 404, same as a missing row, so the response leaks nothing about ids.
func taskIDParam(c echo.Context) (string, error) {
	taskID := c.Param("task_id")
	if _, err := uuid.Parse(taskID); err != nil {
		return "", common.ErrorNotFound
	}
	return taskID, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: scheduled_date must be formatted YYYY-MM-DD", common.ErrorValidation)
	}
	return &parsed, nil
}
