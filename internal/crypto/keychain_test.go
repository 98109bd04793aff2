package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"testing"

	"github.com/MKhiriev/go-env-keeper/models"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}
	s2, err := svc.GenerateEncryptionSalt()
	if err != nil {
		t.Fatalf("GenerateEncryptionSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateDEK_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	d1, err := svc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}
	d2, err := svc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	if len(d1) != 32 {
		t.Fatalf("DEK length = %d, want 32", len(d1))
	}
	if len(d2) != 32 {
		t.Fatalf("DEK length = %d, want 32", len(d2))
	}
	if bytes.Equal(d1, d2) {
		t.Fatalf("expected DEKs to differ, but they are equal")
	}
}

func TestGenerateKEK_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.GenerateKEK(password, salt)
	k2 := svc.GenerateKEK(password, salt)

	if len(k1) != 32 {
		t.Fatalf("KEK length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same password+salt")
	}
}

func TestGenerateKEK_DifferentSaltProducesDifferentKEK(t *testing.T) {
	svc := NewKeyChainService()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1 := svc.GenerateKEK(password, salt1)
	k2 := svc.GenerateKEK(password, salt2)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different KEKs for different salts")
	}
}

func TestWrapDEK_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()

	dek := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32) // valid AES-256 key length

	blob, err := svc.WrapDEK(dek, kek)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	// Reconstruct AES-GCM manually to check the nonce ‖ ciphertext layout.
	block, err := aes.NewCipher(kek)
	if err != nil {
		t.Fatalf("aes.NewCipher error: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("cipher.NewGCM error: %v", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) <= nonceSize {
		t.Fatalf("blob too short: got %d, want > %d", len(blob), nonceSize)
	}

	plain, err := gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		t.Fatalf("gcm.Open error: %v", err)
	}
	if !bytes.Equal(plain, dek) {
		t.Fatalf("decrypted DEK mismatch")
	}

	unwrapped, err := svc.UnwrapDEK(blob, kek)
	if err != nil {
		t.Fatalf("UnwrapDEK error: %v", err)
	}
	if !bytes.Equal(unwrapped, dek) {
		t.Fatalf("UnwrapDEK mismatch")
	}
}

func TestWrapDEK_NonceRandomness(t *testing.T) {
	svc := NewKeyChainService()

	dek := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	blob1, err := svc.WrapDEK(dek, kek)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}
	blob2, err := svc.WrapDEK(dek, kek)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	if bytes.Equal(blob1[:12], blob2[:12]) {
		t.Fatalf("expected different nonces for two encryptions")
	}
	if bytes.Equal(blob1, blob2) {
		t.Fatalf("expected different ciphertext blobs for two encryptions")
	}
}

// TestUnwrapDEK_WrongPassword: неверный мастер-пароль даёт неверный KEK.
func TestUnwrapDEK_WrongPassword(t *testing.T) {
	svc := NewKeyChainService()
	salt := bytes.Repeat([]byte{0x07}, 16)

	dek, _ := svc.GenerateDEK()
	blob, err := svc.WrapDEK(dek, svc.GenerateKEK("right", salt))
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	_, err = svc.UnwrapDEK(blob, svc.GenerateKEK("wrong", salt))
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}

	_, err = svc.UnwrapDEK([]byte{1, 2, 3}, svc.GenerateKEK("right", salt))
	if !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
	}
}

func TestDeriveSubkey_BoundToInfo(t *testing.T) {
	svc := NewKeyChainService()
	dek := bytes.Repeat([]byte{0x42}, 32)

	a1, err := svc.DeriveSubkey(dek, "env:a")
	if err != nil {
		t.Fatalf("DeriveSubkey error: %v", err)
	}
	a2, _ := svc.DeriveSubkey(dek, "env:a")
	b, _ := svc.DeriveSubkey(dek, "env:b")

	if len(a1) != 32 {
		t.Fatalf("subkey length = %d, want 32", len(a1))
	}
	if !bytes.Equal(a1, a2) {
		t.Fatalf("expected deterministic subkey for the same info")
	}
	if bytes.Equal(a1, b) {
		t.Fatalf("expected different subkeys for different info")
	}
	if bytes.Equal(a1, dek) {
		t.Fatalf("subkey must differ from the DEK")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x01}, 32)

	sealed, err := svc.Seal([]byte("postgres://prod"), key, []byte("rec-1"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed.Ciphertext == "" || sealed.Nonce == "" {
		t.Fatalf("expected populated EncryptedValue, got %+v", sealed)
	}

	plain, err := svc.Open(sealed, key, []byte("rec-1"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(plain) != "postgres://prod" {
		t.Fatalf("plaintext mismatch: %q", plain)
	}
}

func TestOpen_Failures(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x01}, 32)
	otherKey := bytes.Repeat([]byte{0x02}, 32)

	sealed, err := svc.Seal([]byte("value"), key, []byte("aad"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	tests := []struct {
		name  string
		value models.EncryptedValue
		key   []byte
		aad   []byte
		want  error
	}{
		{"wrong key", sealed, otherKey, []byte("aad"), ErrDecryption},
		{"wrong aad", sealed, key, []byte("other"), ErrDecryption},
		{"bad base64", models.EncryptedValue{Ciphertext: "%%%", Nonce: sealed.Nonce}, key, []byte("aad"), ErrMalformedCiphertext},
		{"short nonce", models.EncryptedValue{Ciphertext: sealed.Ciphertext, Nonce: "AAAA"}, key, []byte("aad"), ErrMalformedCiphertext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Open(tt.value, tt.key, tt.aad)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSealJSON_OpenJSON(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x03}, 32)

	in := models.ProjectSnapshot{
		Project: models.Project{ID: "p1", Name: "api"},
		Environments: []models.EnvironmentSnapshot{{
			Environment: models.Environment{ID: "e1", ProjectID: "p1", Name: "Production"},
			Records:     []models.Record{{ID: "r1", Key: "DB_URL", Value: "postgres://", Secret: true}},
		}},
	}

	sealed, err := svc.SealJSON(in, key, nil)
	if err != nil {
		t.Fatalf("SealJSON error: %v", err)
	}

	var out models.ProjectSnapshot
	if err = svc.OpenJSON(sealed, key, nil, &out); err != nil {
		t.Fatalf("OpenJSON error: %v", err)
	}
	if out.Project.Name != "api" || len(out.Environments) != 1 || out.Environments[0].Records[0].Value != "postgres://" {
		t.Fatalf("unexpected snapshot: %+v", out)
	}
}
