package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/app"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func transportError(status error, body string) error {
	return fmt.Errorf("%w: %s", status, body)
}

func TestMapAdapterError(t *testing.T) {
	other := errors.New("dial tcp 127.0.0.1:1: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"wrong password", transportError(adapter.ErrUnauthorized, app.MsgInvalidLoginPassword), ErrWrongPassword},
		{"expired token", transportError(adapter.ErrUnauthorized, app.MsgTokenIsExpired), ErrTokenIsExpired},
		{"missing blob", transportError(adapter.ErrNotFound, app.MsgBlobNotFound), store.ErrBlobNotFound},
		{"version conflict", transportError(adapter.ErrConflict, app.MsgVersionConflict), store.ErrVersionConflict},
		{"integrity", transportError(adapter.ErrBadRequest, app.MsgIntegrityCheckFailed), ErrIntegrityCheckFailed},
		{"server failure", transportError(adapter.ErrInternalServerError, app.MsgInternalServerError), ErrServerFailure},
		{"message under another status", transportError(adapter.ErrBadRequest, app.MsgBlobNotFound), nil},
		{"network error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil && tt.in != nil {
				assert.Equal(t, tt.in, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
