// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

func (cfg *ClientConfig) validate() error {
	var errs []error

	switch cfg.Storage.Driver {
	case StorageDriverSQLite, StorageDriverBolt:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver))
	}
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		errs = append(errs, fmt.Errorf("%w: queue file is required", ErrInvalidStorageConfigs))
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: remote address and timeout are required", ErrInvalidAdapterConfigs))
	}
	switch cfg.Adapter.Prober {
	case ProberHTTP, ProberStatic:
	case ProberGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			errs = append(errs, fmt.Errorf("%w: grpc prober needs a grpc address", ErrInvalidAdapterConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown prober %q", ErrInvalidAdapterConfigs, cfg.Adapter.Prober))
	}

	if _, err := cron.ParseStandard(cfg.Workers.SyncSchedule); err != nil {
		errs = append(errs, fmt.Errorf("%w: sync schedule: %w", ErrInvalidWorkerConfigs, err))
	}
	if cfg.Workers.ProbeInterval <= 0 || cfg.Workers.DeliveryTimeout <= 0 || cfg.Workers.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("%w: probe interval, delivery timeout and max retries must be positive", ErrInvalidWorkerConfigs))
	}

	if cfg.App.DeviceID == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: device id, token sign key and token duration are required", ErrInvalidAppConfigs))
	}

	switch cfg.UI.Mode {
	case UIModeAuto, UIModeTUI, UIModeHeadless:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown ui mode %q", ErrInvalidUIConfigs, cfg.UI.Mode))
	}

	return errors.Join(errs...)
}

func (cfg *ServerConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database uri is required", ErrInvalidStorageConfigs))
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs))
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs))
	}

	return errors.Join(errs...)
}
