// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var recordRequest = models.RecordRequest{Title: "ct-title", Username: "ct-user", EncryptedData: "ct-data"}

func storedRecord(id string) models.VaultRecord {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return models.VaultRecord{
		ID:            id,
		UserID:        7,
		Title:         "ct-title",
		Username:      "ct-user",
		EncryptedData: "ct-data",
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

func TestVaultRoutes_RequireSession(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/vault"},
		{http.MethodPost, "/api/vault"},
		{http.MethodPut, "/api/vault/rec-1"},
		{http.MethodDelete, "/api/vault/rec-1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			th := newTestHandler(t)

			rec := th.do(route.method, route.path, recordRequest)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		opts       []requestOption
		setup      func(th *testHandler)
		wantStatus int
	}{
		{
			name:       "bearer header",
			opts:       []requestOption{withBearer(validToken)},
			setup:      func(th *testHandler) { th.expectSession(7) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie",
			opts:       []requestOption{withCookie(validToken)},
			setup:      func(th *testHandler) { th.expectSession(7) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie wins over header",
			opts:       []requestOption{withCookie(validToken), withBearer("stale")},
			setup:      func(th *testHandler) { th.expectSession(7) },
			wantStatus: http.StatusOK,
		},
		{
			name: "malformed header",
			opts: []requestOption{func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			opts: []requestOption{withBearer("expired")},
			setup: func(th *testHandler) {
				th.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(th)
			}
			if tt.wantStatus == http.StatusOK {
				th.vault.EXPECT().List(gomock.Any(), int64(7)).Return([]models.VaultRecord{}, nil)
			}

			rec := th.do(http.MethodGet, "/api/vault", nil, tt.opts...)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListRecords(t *testing.T) {
	th := newTestHandler(t)
	th.expectSession(7)
	records := []models.VaultRecord{storedRecord("b"), storedRecord("a")}
	th.vault.EXPECT().List(gomock.Any(), int64(7)).Return(records, nil)

	rec := th.do(http.MethodGet, "/api/vault", nil, withBearer(validToken))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.VaultListResponse](t, rec)
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, records, got.Records)
}

func TestListRecords_WireFormat(t *testing.T) {
	th := newTestHandler(t)
	th.expectSession(7)
	th.vault.EXPECT().List(gomock.Any(), int64(7)).Return([]models.VaultRecord{storedRecord("a")}, nil)

	rec := th.do(http.MethodGet, "/api/vault", nil, withBearer(validToken))

	got := decode[map[string]any](t, rec)
	data := got["data"].([]any)
	require.Len(t, data, 1)
	record := data[0].(map[string]any)
	for _, key := range []string{"id", "userId", "title", "username", "encryptedData", "createdAt", "updatedAt"} {
		assert.Contains(t, record, key)
	}
}

func TestCreateRecord(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(th *testHandler)
		wantStatus int
	}{
		{
			name: "created",
			body: recordRequest,
			setup: func(th *testHandler) {
				th.vault.EXPECT().Create(gomock.Any(), int64(7), recordRequest).Return(storedRecord("new"), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{name: "invalid json", body: "{", wantStatus: http.StatusBadRequest},
		{
			name: "missing field",
			body: models.RecordRequest{Title: "ct"},
			setup: func(th *testHandler) {
				th.vault.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).
					Return(models.VaultRecord{}, fmt.Errorf("%w: username is required", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: recordRequest,
			setup: func(th *testHandler) {
				th.vault.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(models.VaultRecord{}, errors.New("db"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.expectSession(7)
			if tt.setup != nil {
				tt.setup(th)
			}

			rec := th.do(http.MethodPost, "/api/vault", tt.body, withBearer(validToken))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "new", decode[models.VaultRecord](t, rec).ID)
			}
		})
	}
}

func TestUpdateRecord(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		th := newTestHandler(t)
		th.expectSession(7)
		th.vault.EXPECT().Update(gomock.Any(), int64(7), "rec-1", recordRequest).Return(storedRecord("rec-1"), nil)

		rec := th.do(http.MethodPut, "/api/vault/rec-1", recordRequest, withBearer(validToken))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "rec-1", decode[models.VaultRecord](t, rec).ID)
	})

	t.Run("not owned", func(t *testing.T) {
		th := newTestHandler(t)
		th.expectSession(7)
		th.vault.EXPECT().Update(gomock.Any(), int64(7), "other", gomock.Any()).Return(models.VaultRecord{}, service.ErrRecordNotFound)

		rec := th.do(http.MethodPut, "/api/vault/other", recordRequest, withBearer(validToken))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		th := newTestHandler(t)
		th.expectSession(7)

		rec := th.do(http.MethodPut, "/api/vault/rec-1", "nope", withBearer(validToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteRecord(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		th := newTestHandler(t)
		th.expectSession(7)
		th.vault.EXPECT().Delete(gomock.Any(), int64(7), "rec-1").Return(nil)

		rec := th.do(http.MethodDelete, "/api/vault/rec-1", nil, withBearer(validToken))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("not found", func(t *testing.T) {
		th := newTestHandler(t)
		th.expectSession(7)
		th.vault.EXPECT().Delete(gomock.Any(), int64(7), "gone").Return(service.ErrRecordNotFound)

		rec := th.do(http.MethodDelete, "/api/vault/gone", nil, withBearer(validToken))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
