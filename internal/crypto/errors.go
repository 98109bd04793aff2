package crypto

import "errors"

var (
	// ErrDecryption is returned when authentication of a ciphertext fails:
	// wrong key, wrong associated data or tampered bytes.
	ErrDecryption = errors.New("decryption failed")
	// ErrMalformedCiphertext is returned for blobs that are too short or
	// not valid base64.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
