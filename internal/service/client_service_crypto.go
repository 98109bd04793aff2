package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-env-keeper/internal/crypto"
	"github.com/MKhiriev/go-env-keeper/models"
)

const (
	envKeyInfoPrefix = "env:"
	syncKeyInfo      = "sync"
)

// clientCryptoService seals record values and sync snapshots with subkeys of
// the vault DEK. Each environment gets its own HKDF subkey and the
// environment ID is bound as associated data, so a ciphertext copied to
// another environment fails to open.
type clientCryptoService struct {
	keyChain crypto.KeyChainService

	mu  sync.RWMutex
	dek []byte
}

// NewClientCryptoService returns a service without a key; every operation
// fails with ErrVaultLocked until SetEncryptionKey is called.
func NewClientCryptoService(keyChain crypto.KeyChainService) ClientCryptoService {
	return &clientCryptoService{keyChain: keyChain}
}

func (c *clientCryptoService) SetEncryptionKey(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dek = append([]byte(nil), key...)
}

func (c *clientCryptoService) ClearEncryptionKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.dek {
		c.dek[i] = 0
	}
	c.dek = nil
}

func (c *clientCryptoService) HasEncryptionKey() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dek) > 0
}

func (c *clientCryptoService) subkey(info string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.dek) == 0 {
		return nil, ErrVaultLocked
	}
	return c.keyChain.DeriveSubkey(c.dek, info)
}

// Encrypt implements [Encryptor].
func (c *clientCryptoService) Encrypt(environmentID, plaintext string) (models.EncryptedValue, error) {
	key, err := c.subkey(envKeyInfoPrefix + environmentID)
	if err != nil {
		return models.EncryptedValue{}, err
	}

	value, err := c.keyChain.Seal([]byte(plaintext), key, []byte(environmentID))
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("encrypt value: %w", err)
	}
	return value, nil
}

// Decrypt implements [Encryptor].
func (c *clientCryptoService) Decrypt(environmentID string, value models.EncryptedValue) (string, error) {
	key, err := c.subkey(envKeyInfoPrefix + environmentID)
	if err != nil {
		return "", err
	}

	plaintext, err := c.keyChain.Open(value, key, []byte(environmentID))
	if err != nil {
		return "", wrapDecryption(err)
	}
	return string(plaintext), nil
}

// SealSnapshot encrypts a project snapshot for upload. blobKey is bound as
// associated data.
func (c *clientCryptoService) SealSnapshot(blobKey string, snapshot models.ProjectSnapshot) (models.EncryptedValue, error) {
	key, err := c.subkey(syncKeyInfo)
	if err != nil {
		return models.EncryptedValue{}, err
	}

	value, err := c.keyChain.SealJSON(snapshot, key, []byte(blobKey))
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("seal snapshot: %w", err)
	}
	return value, nil
}

// OpenSnapshot reverses SealSnapshot.
func (c *clientCryptoService) OpenSnapshot(blobKey string, value models.EncryptedValue) (models.ProjectSnapshot, error) {
	key, err := c.subkey(syncKeyInfo)
	if err != nil {
		return models.ProjectSnapshot{}, err
	}

	var snapshot models.ProjectSnapshot
	if err = c.keyChain.OpenJSON(value, key, []byte(blobKey), &snapshot); err != nil {
		return models.ProjectSnapshot{}, wrapDecryption(err)
	}
	return snapshot, nil
}

func wrapDecryption(err error) error {
	if errors.Is(err, crypto.ErrDecryption) || errors.Is(err, crypto.ErrMalformedCiphertext) {
		return fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return err
}
