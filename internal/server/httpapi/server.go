// Package httpapi exposes the authentication and task endpoints over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tasks"
)

const shutdownTimeout = 10 * time.Second

// UserProvider is the slice of the user service the handlers need.
type UserProvider interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// TaskProvider is the slice of the task service the handlers need. The
// userID argument is always the verified token subject.
type TaskProvider interface {
	Create(ctx context.Context, userID, title string, description *string, scheduledDate *time.Time) (*models.Task, error)
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Get(ctx context.Context, userID, taskID string) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, params tasks.UpdateParams) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
	ToggleComplete(ctx context.Context, userID, taskID string) (*models.Task, error)
}

type HTTPServer struct {
	address     string
	logger      logging.Logger
	users       UserProvider
	tasks       TaskProvider
	jwtSecret   []byte
	corsOrigins []string
}

func NewHTTPServer(addr string, l logging.Logger, up UserProvider, tp TaskProvider, secretKey string, corsOrigins string) (*HTTPServer, error) {
	origins := []string{}
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return &HTTPServer{
		address:     addr,
		logger:      l.With("module", "http_server"),
		users:       up,
		tasks:       tp,
		jwtSecret:   []byte(secretKey),
		corsOrigins: origins,
	}, nil
}

func (s *HTTPServer) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.corsOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.GET("/", s.root)
	e.GET("/health", s.health)

	e.POST("/api/auth/signup", s.signup)
	e.POST("/api/auth/login", s.login)

	e.GET("/api/:user_id/tasks", s.listTasks)
	e.POST("/api/:user_id/tasks", s.createTask)
	e.GET("/api/:user_id/tasks/:task_id", s.getTask)
	e.PUT("/api/:user_id/tasks/:task_id", s.updateTask)
	e.DELETE("/api/:user_id/tasks/:task_id", s.deleteTask)
	e.PATCH("/api/:user_id/tasks/:task_id/complete", s.toggleTask)

	return e
}

func (s *HTTPServer) Run(ctx context.Context) error {

	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
