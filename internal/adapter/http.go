package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/utils"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL, request
// timeout and retry count, and initialises the shared HMAC hasher pool used
// for upload integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapterCfg.Retries)
	client.SetBaseURL(baseURL)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/signup and keeps the token from the Authorization header.
func (h *httpServerAdapter) Signup(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/signup", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and keeps the token from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&authResponse).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = h.takeToken(resp); err != nil {
		return models.AuthResponse{}, err
	}
	return authResponse, nil
}

// Refresh implements [ServerAdapter]. POST /api/auth/refresh.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&authResponse).
		Post("/api/auth/refresh")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = h.takeToken(resp); err != nil {
		return models.AuthResponse{}, err
	}
	return authResponse, nil
}

func (h *httpServerAdapter) takeToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Me implements [ServerAdapter]. GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListBlobs implements [ServerAdapter]. GET /api/blobs?prefix=...
func (h *httpServerAdapter) ListBlobs(ctx context.Context, prefix string) ([]models.BlobInfo, error) {
	req := h.authedRequest(ctx)
	if prefix != "" {
		req.SetQueryParam("prefix", prefix)
	}

	resp, err := req.Get("/api/blobs")
	if err != nil {
		return nil, fmt.Errorf("list blobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.BlobListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list blobs response: %w", err)
	}
	return list.Blobs, nil
}

// GetBlob implements [ServerAdapter]. GET /api/blobs/{key}.
func (h *httpServerAdapter) GetBlob(ctx context.Context, key string) (models.Blob, error) {
	resp, err := h.authedRequest(ctx).Get(blobPath(key))
	if err != nil {
		return models.Blob{}, fmt.Errorf("get blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blob{}, err
	}

	var blob models.Blob
	if err = json.Unmarshal(resp.Body(), &blob); err != nil {
		return models.Blob{}, fmt.Errorf("decode blob response: %w", err)
	}
	return blob, nil
}

// PutBlob implements [ServerAdapter]. It computes the upload integrity hash
// and PUTs the request to PUT /api/blobs.
func (h *httpServerAdapter) PutBlob(ctx context.Context, req models.BlobPutRequest) (models.BlobPutResponse, error) {
	if h.hashKey != "" {
		req.Hash = utils.HashHex(req.HashPayload())
	}

	var putResponse models.BlobPutResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&putResponse).
		Put("/api/blobs")
	if err != nil {
		return models.BlobPutResponse{}, fmt.Errorf("put blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlobPutResponse{}, err
	}

	return putResponse, nil
}

// DeleteBlob implements [ServerAdapter]. DELETE /api/blobs/{key}.
func (h *httpServerAdapter) DeleteBlob(ctx context.Context, key string) error {
	resp, err := h.authedRequest(ctx).Delete(blobPath(key))
	if err != nil {
		return fmt.Errorf("delete blob request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}

// blobPath escapes every segment of key but keeps the slashes.
func blobPath(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/api/blobs/" + strings.Join(segments, "/")
}
