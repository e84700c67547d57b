// Package tui renders the interactive sync status screen of the client.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/models"
)

const statusBuffer = 8

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the status screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	updates, cancel := t.services.StatusService.Subscribe(statusBuffer)
	defer cancel()

	model := newStatusModel(ctx, t.services, t.buildInfo, updates)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Error().Err(err).Msg("tui stopped with error")
	}
	return err
}
