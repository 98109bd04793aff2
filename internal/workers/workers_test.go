// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/mock"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Run(context.Background())

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Stop()

	assert.Equal(t, []int{-3, -2, -1}, order)
}

func TestWorkers_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, 2, w.runCount)
	assert.Equal(t, 1, w.stopCount)
}

func TestSyncWorker_StartsJobWithInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 2*time.Minute),
		job.EXPECT().Stop(),
	)

	w := NewSyncWorker(job, config.ClientWorkers{SyncInterval: 2 * time.Minute}, logger.Nop())
	w.Run(ctx)
	w.Stop()
}

func TestSyncWorker_DefaultInterval(t *testing.T) {
	w := NewSyncWorker(nil, config.ClientWorkers{}, logger.Nop())
	assert.Equal(t, config.DefaultSyncInterval, w.interval)

	w = NewSyncWorker(nil, config.ClientWorkers{SyncInterval: -time.Second}, logger.Nop())
	assert.Equal(t, config.DefaultSyncInterval, w.interval)
}

func TestNewClientWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)
	job.EXPECT().Start(gomock.Any(), time.Minute)
	job.EXPECT().Stop()

	ws := NewClientWorkers(&service.ClientServices{SyncJob: job}, config.ClientWorkers{SyncInterval: time.Minute}, logger.Nop())
	ws.Run(context.Background())
	ws.Stop()
}

// orderWorker records its ID on Run and its negated ID on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}
