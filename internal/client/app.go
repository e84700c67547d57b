package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/simbaid-sync/internal/adapter"
	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/connectivity"
	"github.com/MKhiriev/simbaid-sync/internal/crypto"
	"github.com/MKhiriev/simbaid-sync/internal/handler/grpc"
	"github.com/MKhiriev/simbaid-sync/internal/handler/local"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/server"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/store"
	"github.com/MKhiriev/simbaid-sync/internal/tui"
	"github.com/MKhiriev/simbaid-sync/internal/workers"
	"github.com/MKhiriev/simbaid-sync/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	storages *store.ClientStorages
	services *service.ClientServices
	monitor  *connectivity.Monitor
	prober   connectivity.Prober
	localAPI *server.HTTPServer
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp opens the queue and builds every component. The returned App must
// be closed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	sealer, err := newSealer(cfg.App)
	if err != nil {
		return nil, err
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app := &App{cfg: cfg, buildInfo: buildInfo, storages: storages, logger: logger}
	if err = app.init(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

func (a *App) init(ctx context.Context) error {
	remote, err := adapter.NewHTTPRemoteAdapter(a.cfg.Adapter, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create remote adapter: %w", err)
	}

	if a.prober, err = newProber(a.cfg.Adapter, remote); err != nil {
		return fmt.Errorf("create connectivity prober: %w", err)
	}

	if a.monitor, err = connectivity.NewMonitor(ctx, a.prober, a.cfg.Workers.ProbeInterval, a.logger); err != nil {
		return fmt.Errorf("create connectivity monitor: %w", err)
	}

	if a.services, err = service.NewClientServices(a.storages.QueueRepository, remote, a.monitor, a.cfg.Workers, a.logger); err != nil {
		return fmt.Errorf("create client services: %w", err)
	}

	if a.cfg.Server.HTTPAddress != "" {
		router := local.NewHandler(a.services, a.buildInfo, a.logger).Init()
		a.localAPI = server.NewHTTPServer(router, a.cfg.Server.HTTPAddress, 0, a.logger)
	}

	if useTUI(a.cfg.UI.Mode, os.Stdout) {
		if a.ui, err = tui.New(a.services, a.buildInfo, a.logger); err != nil {
			return fmt.Errorf("create ui: %w", err)
		}
	}

	return nil
}

// Services exposes the wired services to embedders that produce mutations
// in-process.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the background workers and, when a terminal UI is attached,
// blocks on it. Quitting the UI stops the workers. An in-flight sync pass
// is allowed to finish before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	background := workers.NewWorkers(a.logger).
		Add("connectivity", a.monitor).
		Add("status", a.services.StatusService).
		Add("sync-job", a.services.SyncJob)
	if a.localAPI != nil {
		background.Add("local-api", a.localAPI)
	}

	a.logger.Info().
		Str("driver", a.cfg.Storage.Driver).
		Str("remote", a.cfg.Adapter.HTTPAddress).
		Bool("tui", a.ui != nil).
		Msg("sync client started")

	if a.ui == nil {
		err := background.Run(ctx)
		a.services.SyncEngine.Wait()
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- background.Run(ctx)
	}()

	uiErr := a.ui.Run(ctx)
	cancel()
	workersErr := <-done
	a.services.SyncEngine.Wait()

	return errors.Join(uiErr, workersErr)
}

func (a *App) Close() error {
	var errs []error
	if closer, ok := a.prober.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if a.storages != nil {
		errs = append(errs, a.storages.Close())
	}
	return errors.Join(errs...)
}

func newSealer(cfg config.ClientApp) (crypto.PayloadSealer, error) {
	if cfg.PayloadPassphrase == "" {
		return crypto.NewNopSealer(), nil
	}
	sealer, err := crypto.NewPassphraseSealer(cfg.PayloadPassphrase)
	if err != nil {
		return nil, fmt.Errorf("create payload sealer: %w", err)
	}
	return sealer, nil
}

func newProber(cfg config.ClientAdapter, remote adapter.RemoteAdapter) (connectivity.Prober, error) {
	switch cfg.Prober {
	case config.ProberGRPC:
		return connectivity.NewGRPCProber(cfg.GRPCAddress, grpc.DeliveryServiceName)
	case config.ProberStatic:
		return connectivity.NewStaticProber(true), nil
	default:
		return connectivity.NewHTTPProber(remote), nil
	}
}

// useTUI resolves the UI mode. "auto" shows the TUI only when out is a
// terminal.
func useTUI(mode string, out *os.File) bool {
	switch mode {
	case config.UIModeTUI:
		return true
	case config.UIModeHeadless:
		return false
	default:
		return out != nil && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()))
	}
}
