// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultKey is the persisted key material of the local vault: the argon2id
// salt and the data key wrapped by the password-derived key.
type VaultKey struct {
	Salt         []byte    `json:"salt"`
	EncryptedDEK []byte    `json:"encrypted_dek"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredProject is a project with its whole subtree in persisted form. It
// is the unit the local store replaces atomically when a remote snapshot is
// imported.
type StoredProject struct {
	Project      Project
	Environments []StoredEnvironment
}

// StoredEnvironment is one environment of a [StoredProject].
type StoredEnvironment struct {
	Environment Environment
	Records     []StoredRecord
}
