// Package di provides dependency injection for the Orbit CLI.
// It contains the service container and factory functions.
package di

import (
	"os"

	"github.com/orbit-hq/orbit-cli/internal/api"
	"github.com/orbit-hq/orbit-cli/internal/config"
	"github.com/orbit-hq/orbit-cli/internal/logging"
	"github.com/orbit-hq/orbit-cli/internal/service"
	iface "github.com/orbit-hq/orbit-cli/internal/service/interface"
	"github.com/orbit-hq/orbit-cli/internal/store"
)

// Container holds all service dependencies for the CLI.
// Services are accessed via interfaces to enable mocking in tests.
type Container struct {
	settings       *config.Settings
	logger         logging.Logger
	sessionService iface.SessionService
}

// NewContainer creates a new dependency container with default implementations
func NewContainer() (*Container, error) {
	settings := config.Load()

	tokenStore, err := store.NewFileStore()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, settings.LogLevel)
	client := api.NewClient(settings.APIBaseURL, settings.RequestTimeout)

	return &Container{
		settings:       settings,
		logger:         logger,
		sessionService: service.NewSessionService(client, tokenStore, logger),
	}, nil
}

// NewContainerWithServices creates a container with custom service
// implementations. This is useful for testing with mock services.
func NewContainerWithServices(settings *config.Settings, sessionService iface.SessionService) *Container {
	return &Container{
		settings:       settings,
		logger:         logging.New(os.Stderr, settings.LogLevel),
		sessionService: sessionService,
	}
}

// SessionService returns the session service
func (c *Container) SessionService() iface.SessionService {
	return c.sessionService
}

// Settings returns the runtime settings
func (c *Container) Settings() *config.Settings {
	return c.settings
}

// Logger returns the logger
func (c *Container) Logger() logging.Logger {
	return c.logger
}
