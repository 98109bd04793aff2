package models

import "time"

// AuthResponse is returned by the signup, login and refresh endpoints.
// The token itself travels in the Authorization response header.
type AuthResponse struct {
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Blob is an opaque encrypted object stored by the sync server.
type Blob struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"-"`
	Key       string    `json:"key"`
	Data      string    `json:"data"`
	Nonce     string    `json:"nonce"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlobInfo is the listing form of a [Blob] without its payload.
type BlobInfo struct {
	Key       string    `json:"key"`
	Version   int64     `json:"version"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlobListResponse wraps the result of GET /api/blobs.
type BlobListResponse struct {
	Blobs  []BlobInfo `json:"blobs"`
	Length int        `json:"length"`
}

// BlobPutRequest stores a new version of a blob.
//
// BaseVersion is the version the client last saw (0 for a new blob). The
// server rejects the write with 409 when the stored version differs,
// unless Force is set. Hash is the HMAC of Data used as a transport
// integrity check.
type BlobPutRequest struct {
	Key         string `json:"key"`
	Data        string `json:"data"`
	Nonce       string `json:"nonce"`
	BaseVersion int64  `json:"base_version"`
	Force       bool   `json:"force,omitempty"`
	Hash        string `json:"hash"`
}

// BlobPutResponse acknowledges a stored blob.
type BlobPutResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HashPayload returns the bytes covered by the upload integrity hash.
func (r BlobPutRequest) HashPayload() []byte {
	return []byte(r.Key + "\n" + r.Data + "\n" + r.Nonce)
}
