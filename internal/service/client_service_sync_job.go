package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/models"
)

// syncRunner is the part of [SyncManager] the job needs.
type syncRunner interface {
	Connected() bool
	Sync(ctx context.Context) (models.SyncOutcome, error)
}

type clientSyncJob struct {
	runner syncRunner

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls runner.Sync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(runner syncRunner) ClientSyncJob {
	return &clientSyncJob{runner: runner}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval while the
// runner is connected. If interval is zero or negative it defaults to
// config.DefaultSyncInterval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.runner.Connected() {
					continue
				}
				if _, err := j.runner.Sync(jobCtx); err != nil {
					logger.FromContext(jobCtx).Debug().Err(err).Msg("periodic sync finished with errors")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
