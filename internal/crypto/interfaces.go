package crypto

import "github.com/MKhiriev/go-env-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography. It knows nothing about
// the network, the database or users; it only generates and protects keys
// and seals values.
//
// Key hierarchy:
//
//	Salt, DEK = GenerateEncryptionSalt(), GenerateDEK()   (once per vault)
//	KEK       = GenerateKEK(masterPassword, Salt)
//	EncDEK    = WrapDEK(DEK, KEK)                          (persisted with Salt)
//	EnvKey    = DeriveSubkey(DEK, "env:"+environmentID)    (per environment)
//	SyncKey   = DeriveSubkey(DEK, "sync")                  (remote blobs)
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes. The salt is not secret.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK returns a random 256-bit data-encryption key. The DEK
	// never leaves the client unwrapped.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the master password
	// with Argon2id. The KEK only lives in memory.
	GenerateKEK(masterPassword string, salt []byte) []byte

	// WrapDEK encrypts the DEK with the KEK (AES-GCM, nonce ‖ ciphertext).
	WrapDEK(DEK, KEK []byte) ([]byte, error)

	// UnwrapDEK reverses WrapDEK. A wrong KEK yields ErrDecryption.
	UnwrapDEK(encryptedDEK, KEK []byte) ([]byte, error)

	// DeriveSubkey derives a 256-bit key bound to info with HKDF-SHA256.
	DeriveSubkey(DEK []byte, info string) ([]byte, error)

	// Seal encrypts plaintext with key. aad is authenticated but not
	// encrypted; opening with a different aad fails.
	Seal(plaintext, key, aad []byte) (models.EncryptedValue, error)

	// Open reverses Seal. Tampering, a wrong key or a wrong aad yield
	// ErrDecryption.
	Open(value models.EncryptedValue, key, aad []byte) ([]byte, error)

	// SealJSON marshals data to JSON and seals it.
	SealJSON(data any, key, aad []byte) (models.EncryptedValue, error)

	// OpenJSON opens value and unmarshals the plaintext into target.
	OpenJSON(value models.EncryptedValue, key, aad []byte, target any) error
}
