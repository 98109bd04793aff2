// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-hash-key"

// --- Helpers ---

func newHashingHandler(enabled bool) *Handler {
	utils.InitHasherPool(testHashKey)
	return &Handler{logger: logger.Nop(), integrityCheck: enabled}
}

func samplePutRequest() models.BlobPutRequest {
	return models.BlobPutRequest{
		Key:         "envsync/projects/p1",
		Data:        "ZW5jcnlwdGVk",
		Nonce:       "bm9uY2U=",
		BaseVersion: 1,
	}
}

func signed(req models.BlobPutRequest) models.BlobPutRequest {
	req.Hash = utils.HashString(string(req.HashPayload()), testHashKey)
	return req
}

func makePutBody(t *testing.T, req models.BlobPutRequest) []byte {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

// executeHashing runs blobHashing and returns the recorder, whether next
// was called and the body next received.
func executeHashing(h *Handler, body []byte) (*httptest.ResponseRecorder, bool, []byte) {
	var (
		called   bool
		nextBody []byte
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		nextBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/api/blobs", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.blobHashing(next).ServeHTTP(rec, req)
	return rec, called, nextBody
}

// --- Table ---

func TestBlobHashing(t *testing.T) {
	tampered := signed(samplePutRequest())
	tampered.Data = "b3RoZXI="

	movedKey := signed(samplePutRequest())
	movedKey.Key = "envsync/projects/other"

	upper := signed(samplePutRequest())
	upper.Hash = strings.ToUpper(upper.Hash)

	tests := []struct {
		name       string
		enabled    bool
		body       []byte
		wantStatus int
		wantNext   bool
		wantBody   string
	}{
		{name: "valid hash", enabled: true, body: makePutBody(t, signed(samplePutRequest())), wantStatus: http.StatusOK, wantNext: true},
		{name: "upper-case hash", enabled: true, body: makePutBody(t, upper), wantStatus: http.StatusOK, wantNext: true},
		{name: "tampered data", enabled: true, body: makePutBody(t, tampered), wantStatus: http.StatusBadRequest, wantBody: app.MsgIntegrityCheckFailed},
		{name: "key changed after signing", enabled: true, body: makePutBody(t, movedKey), wantStatus: http.StatusBadRequest, wantBody: app.MsgIntegrityCheckFailed},
		{name: "missing hash", enabled: true, body: makePutBody(t, samplePutRequest()), wantStatus: http.StatusBadRequest, wantBody: app.MsgIntegrityCheckFailed},
		{name: "invalid JSON", enabled: true, body: []byte("{not json"), wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "check disabled", enabled: false, body: makePutBody(t, samplePutRequest()), wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, called, _ := executeHashing(newHashingHandler(tt.enabled), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

// --- Body is restored for the next handler ---

func TestBlobHashing_RestoresBody(t *testing.T) {
	body := makePutBody(t, signed(samplePutRequest()))

	rec, called, nextBody := executeHashing(newHashingHandler(true), body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	assert.Equal(t, body, nextBody)
}

// --- Concurrent requests share the hasher pool safely ---

func TestBlobHashing_Concurrent(t *testing.T) {
	h := newHashingHandler(true)
	body := makePutBody(t, signed(samplePutRequest()))

	const n = 50
	var wg sync.WaitGroup
	codes := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, _, _ := executeHashing(h, body)
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}
