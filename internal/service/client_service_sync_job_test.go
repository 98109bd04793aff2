// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncRunner считает вызовы Sync и позволяет управлять подключением.
type spySyncRunner struct {
	calls        atomic.Int64
	disconnected atomic.Bool
	err          error
}

func (s *spySyncRunner) Connected() bool { return !s.disconnected.Load() }

func (s *spySyncRunner) Sync(_ context.Context) (models.SyncOutcome, error) {
	s.calls.Add(1)
	return models.SyncOutcome{}, s.err
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	spy := &spySyncRunner{}
	job := NewClientSyncJob(spy)
	require.NotNil(t, job)

	// проверяем что возвращённый объект реализует ClientSyncJob
	var _ ClientSyncJob = job
}

func TestSyncManager_SatisfiesSyncRunner(t *testing.T) {
	var _ syncRunner = (*SyncManager)(nil)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsSync(t *testing.T) {
	spy := &spySyncRunner{}
	job := NewClientSyncJob(spy)
	ctx := context.Background()

	// Интервал 10ms: за 55ms должно быть ~5 тиков
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync должен быть вызван несколько раз, вызвано: %d", got)
}

func TestClientSyncJob_Disconnected_SkipsSync(t *testing.T) {
	spy := &spySyncRunner{}
	spy.disconnected.Store(true)
	job := NewClientSyncJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load(), "без сессии синхронизация не запускается")
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncRunner{}
	job := NewClientSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncRunner{})

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncRunner{})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	// Повторный Stop не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncRunner{}
		job := NewClientSyncJob(spy)
		ctx, cancel := context.WithCancel(context.Background())

		// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
		job.Start(ctx, interval)
		time.Sleep(20 * time.Millisecond)
		cancel()
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load(), "interval %s", interval)
	}
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncRunner{}
	job := NewClientSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job: внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "второй Start должен продолжить генерировать вызовы")
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spySyncRunner{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel() // отменяем родительский контекст

	// Stop должен вернуться без зависания
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestClientSyncJob_SyncError_DoesNotStopJob(t *testing.T) {
	spy := &spySyncRunner{err: assert.AnError}
	job := NewClientSyncJob(spy)

	// Sync возвращает ошибку, но джоб продолжает работать
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "несмотря на ошибки, Sync продолжает вызываться: %d", got)
}
