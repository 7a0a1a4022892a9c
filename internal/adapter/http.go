// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	signupPath  = "/api/auth/signup"
	loginPath   = "/api/auth/login"
	logoutPath  = "/api/auth/logout"
	vaultPath   = "/api/vault"
	recordPath  = "/api/vault/{id}"
	versionPath = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL and applies the
// configured request timeout.
//
// Parameters:
//
//	adapterCfg - server address and per-request timeout; a bare "host:port"
//	             gets an http:// scheme, a zero timeout keeps the client default
//	logger     - receives debug events for sessions and fetched records
//
// Returns:
//
//	ServerAdapter - ready to use; the session cookie is kept in its jar
//	error         - non-nil if the address is empty or cannot be parsed as a URL
//
// Example usage:
//
//	srv, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
//		HTTPAddress:    "localhost:8080",
//		RequestTimeout: 5 * time.Second,
//	}, log)
//	if err != nil {
//		return err
//	}
//	token, err := srv.Login(ctx, creds)
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// Signup implements [ServerAdapter]. POST /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post(signupPath)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: signup request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
//
// The server answers with the session cookie, which the resty cookie jar
// stores and replays on every later request.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.logger.Debug().Int64("user_id", userID).Msg("session established")
	return models.Token{SignedString: signed, UserID: userID}, nil
}

// Logout implements [ServerAdapter]. POST /api/auth/logout.
// The server expires the cookie, so the jar drops it.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(logoutPath)
	if err != nil {
		return fmt.Errorf("%w: logout request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// ListRecords implements [ServerAdapter]. GET /api/vault.
func (h *httpServerAdapter) ListRecords(ctx context.Context) ([]models.VaultRecord, error) {
	var list models.VaultListResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&list).
		Get(vaultPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list records request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("records", len(list.Records)).Msg("records fetched")
	return list.Records, nil
}

// CreateRecord implements [ServerAdapter]. POST /api/vault.
//
// Returns:
//
//	models.VaultRecord - the stored record with the server-assigned id and timestamps
//	error              - wraps ErrTransport when the server was not reached,
//	                     otherwise the sentinel matching the response status
func (h *httpServerAdapter) CreateRecord(ctx context.Context, req models.RecordRequest) (models.VaultRecord, error) {
	var record models.VaultRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&record).
		Post(vaultPath)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: create record request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return record, nil
}

// UpdateRecord implements [ServerAdapter]. PUT /api/vault/{id}.
// A record the session does not own comes back as ErrNotFound.
func (h *httpServerAdapter) UpdateRecord(ctx context.Context, id string, req models.RecordRequest) (models.VaultRecord, error) {
	var record models.VaultRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		SetResult(&record).
		Put(recordPath)
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: update record request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return record, nil
}

// DeleteRecord implements [ServerAdapter]. DELETE /api/vault/{id}.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(recordPath)
	if err != nil {
		return fmt.Errorf("%w: delete record request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// GetVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}
