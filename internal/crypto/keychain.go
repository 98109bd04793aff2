// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-env-keeper/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	saltSize = 16
	keySize  = 32
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the OWASP (2024)
// Argon2id parameters: 1 iteration, 64 MiB, 4 threads, 32-byte key.
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  keySize,
	}
}

func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	return randomBytes(saltSize)
}

func (k *keyChainService) GenerateDEK() ([]byte, error) {
	return randomBytes(keySize)
}

func (k *keyChainService) GenerateKEK(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

func (k *keyChainService) WrapDEK(DEK, KEK []byte) ([]byte, error) {
	gcm, err := newGCM(KEK)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	// blob = nonce ‖ ciphertext
	return gcm.Seal(nonce, nonce, DEK, nil), nil
}

func (k *keyChainService) UnwrapDEK(encryptedDEK, KEK []byte) ([]byte, error) {
	gcm, err := newGCM(KEK)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(encryptedDEK) < nonceSize {
		return nil, ErrMalformedCiphertext
	}

	nonce, ciphertext := encryptedDEK[:nonceSize], encryptedDEK[nonceSize:]
	dek, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// almost always a wrong master password
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return dek, nil
}

func (k *keyChainService) DeriveSubkey(DEK []byte, info string) ([]byte, error) {
	subkey := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, DEK, nil, []byte(info)), subkey); err != nil {
		return nil, fmt.Errorf("derive subkey: %w", err)
	}
	return subkey, nil
}

func (k *keyChainService) Seal(plaintext, key, aad []byte) (models.EncryptedValue, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedValue{}, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedValue{
		Ciphertext: base64.StdEncoding.EncodeToString(gcm.Seal(nil, nonce, plaintext, aad)),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

func (k *keyChainService) Open(value models.EncryptedValue, key, aad []byte) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(value.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedCiphertext, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(value.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: decode nonce: %v", ErrMalformedCiphertext, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrMalformedCiphertext
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return plaintext, nil
}

func (k *keyChainService) SealJSON(data any, key, aad []byte) (models.EncryptedValue, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("marshal data: %w", err)
	}
	return k.Seal(plaintext, key, aad)
}

func (k *keyChainService) OpenJSON(value models.EncryptedValue, key, aad []byte, target any) error {
	plaintext, err := k.Open(value, key, aad)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
