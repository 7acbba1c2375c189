// Package cli implements an interactive terminal client for TodoKeeper.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/api"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
)

type App struct {
	config    *config.Config
	api       *api.Client
	userEmail string
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.IsLoggedIn()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
