// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
)

// SyncWorker drives the client's periodic sync job.
type SyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(job service.ClientSyncJob, cfg config.ClientWorkers, logger *logger.Logger) *SyncWorker {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	return &SyncWorker{job: job, interval: interval, logger: logger}
}

func (w *SyncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("starting sync worker")
	w.job.Start(ctx, w.interval)
}

func (w *SyncWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Msg("sync worker stopped")
}
