package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/tui"
)

var errNoAppDependencies = errors.New("client app requires services, ui and workers")

type App struct {
	services *service.ClientServices
	ui       UserInterface
	workers  BackgroundWorkers
	start    tui.Selection
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the interactive client. start, when it names two
// environments, opens the diff viewer directly.
func NewApp(services *service.ClientServices, ui UserInterface, workers BackgroundWorkers, start tui.Selection, log *logger.Logger) (*App, error) {
	if services == nil || services.SyncManager == nil || ui == nil || workers == nil {
		return nil, errNoAppDependencies
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		start:    start,
		logger:   log,
	}, nil
}

// Run restores the saved session, starts the background sync and blocks in
// the user interface. Quitting the interface is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	a.services.SyncManager.RestoreSession(ctx)

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx, a.start)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("ui stopped with error")
	}
	return err
}
