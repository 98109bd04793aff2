// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/crypto"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealCryptoSvc(t *testing.T) (service.ClientCryptoService, []byte) {
	t.Helper()
	keyChain := crypto.NewKeyChainService()
	svc := service.NewClientCryptoService(keyChain)

	dek, err := keyChain.GenerateDEK()
	require.NoError(t, err)

	svc.SetEncryptionKey(dek)
	return svc, dek
}

// --- Encrypt / Decrypt ---

func TestClientCryptoService_EncryptDecrypt_RoundTrip(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)

	enc, err := svc.Encrypt("env-1", "postgres://user:pass@db/app")
	require.NoError(t, err)

	// Зашифрованное значение не содержит данные в открытом виде
	assert.NotContains(t, enc.Ciphertext, "postgres")
	assert.NotEmpty(t, enc.Nonce)

	plain, err := svc.Decrypt("env-1", enc)
	require.NoError(t, err)
	assert.Equal(t, "postgres://user:pass@db/app", plain)
}

func TestClientCryptoService_Encrypt_FreshNonceEachCall(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)

	a, err := svc.Encrypt("env-1", "same")
	require.NoError(t, err)
	b, err := svc.Encrypt("env-1", "same")
	require.NoError(t, err)

	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
}

func TestClientCryptoService_Decrypt_OtherEnvironmentFails(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)

	enc, err := svc.Encrypt("staging", "value")
	require.NoError(t, err)

	// Контексты окружений не взаимозаменяемы
	_, err = svc.Decrypt("production", enc)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrDecryption)
}

func TestClientCryptoService_Decrypt_WrongKeyFails(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)
	other, _ := newRealCryptoSvc(t)

	enc, err := svc.Encrypt("env-1", "value")
	require.NoError(t, err)

	_, err = other.Decrypt("env-1", enc)
	assert.ErrorIs(t, err, service.ErrDecryption)
}

func TestClientCryptoService_Decrypt_Malformed(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)

	_, err := svc.Decrypt("env-1", models.EncryptedValue{Ciphertext: "!!!", Nonce: "???"})
	assert.ErrorIs(t, err, service.ErrDecryption)
}

// --- Key lifecycle ---

func TestClientCryptoService_WithoutKey(t *testing.T) {
	svc := service.NewClientCryptoService(crypto.NewKeyChainService())

	assert.False(t, svc.HasEncryptionKey())

	_, err := svc.Encrypt("env-1", "value")
	assert.ErrorIs(t, err, service.ErrVaultLocked)

	_, err = svc.SealSnapshot("k", models.ProjectSnapshot{})
	assert.ErrorIs(t, err, service.ErrVaultLocked)
}

func TestClientCryptoService_ClearEncryptionKey(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)
	require.True(t, svc.HasEncryptionKey())

	svc.ClearEncryptionKey()

	assert.False(t, svc.HasEncryptionKey())
	_, err := svc.Decrypt("env-1", models.EncryptedValue{})
	assert.ErrorIs(t, err, service.ErrVaultLocked)
}

func TestClientCryptoService_SetEncryptionKey_CopiesKey(t *testing.T) {
	keyChain := crypto.NewKeyChainService()
	svc := service.NewClientCryptoService(keyChain)
	dek, err := keyChain.GenerateDEK()
	require.NoError(t, err)

	svc.SetEncryptionKey(dek)
	enc, err := svc.Encrypt("env-1", "value")
	require.NoError(t, err)

	// изменение исходного среза не должно влиять на сервис
	dek[0] ^= 0xFF
	plain, err := svc.Decrypt("env-1", enc)
	require.NoError(t, err)
	assert.Equal(t, "value", plain)
}

// --- Snapshots ---

func TestClientCryptoService_Snapshot_RoundTrip(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)
	snapshot := models.ProjectSnapshot{
		Project: models.Project{ID: "p1", Name: "billing"},
		Environments: []models.EnvironmentSnapshot{{
			Environment: models.Environment{ID: "e1", ProjectID: "p1", Name: "Production"},
			Records:     []models.Record{{ID: "r1", Key: "API_KEY", Value: "secret", Secret: true}},
		}},
	}

	sealed, err := svc.SealSnapshot("envsync/projects/p1", snapshot)
	require.NoError(t, err)
	assert.NotContains(t, sealed.Ciphertext, "API_KEY")

	opened, err := svc.OpenSnapshot("envsync/projects/p1", sealed)
	require.NoError(t, err)
	assert.Equal(t, snapshot, opened)
}

func TestClientCryptoService_Snapshot_BoundToBlobKey(t *testing.T) {
	svc, _ := newRealCryptoSvc(t)

	sealed, err := svc.SealSnapshot("envsync/projects/p1", models.ProjectSnapshot{})
	require.NoError(t, err)

	_, err = svc.OpenSnapshot("envsync/projects/p2", sealed)
	assert.ErrorIs(t, err, service.ErrDecryption)
}
