// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is a single plaintext key/value secret of an environment.
//
// Records from two replicas are matched only by Key (exact, case-sensitive).
// ID is local to the replica that produced the record and is never compared.
type Record struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Secret bool   `json:"secret"`
}

// EncryptedValue is the output of the value cipher. Both fields are
// standard base64. A value encrypted for one environment cannot be opened
// with the context of another.
type EncryptedValue struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// StoredRecord is the persisted form of a Record: the value never leaves
// the store unencrypted.
type StoredRecord struct {
	ID            string         `json:"id"`
	EnvironmentID string         `json:"environment_id"`
	Key           string         `json:"key"`
	Value         EncryptedValue `json:"value"`
	Secret        bool           `json:"secret"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName returns the name of the local table holding records.
func (r StoredRecord) TableName() string {
	return "records"
}
