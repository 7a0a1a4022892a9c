// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var (
	correctHorse = []byte("correct-horse")
	wrongHorse   = []byte("wrong-horse")
)

func newTestCodec(t *testing.T) crypto.Codec {
	t.Helper()
	c, err := crypto.NewCodec(crypto.KDFParams{Time: 1, Memory: 64, Threads: 1})
	require.NoError(t, err)
	return c
}

// memStore is an in-memory Storage API: newest record first, ids assigned
// on create, missing ids reported as adapter.ErrNotFound.
type memStore struct {
	mu      sync.Mutex
	records []models.VaultRecord
	nextID  int
	clock   time.Time
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *memStore) ListRecords(context.Context) ([]models.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.VaultRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *memStore) CreateRecord(_ context.Context, req models.RecordRequest) (models.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.clock = s.clock.Add(time.Minute)
	r := models.VaultRecord{
		ID:            fmt.Sprintf("rec-%d", s.nextID),
		UserID:        1,
		Title:         req.Title,
		Username:      req.Username,
		EncryptedData: req.EncryptedData,
		CreatedAt:     s.clock,
		UpdatedAt:     s.clock,
	}
	s.records = append([]models.VaultRecord{r}, s.records...)
	return r, nil
}

func (s *memStore) UpdateRecord(_ context.Context, id string, req models.RecordRequest) (models.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			r.Title, r.Username, r.EncryptedData = req.Title, req.Username, req.EncryptedData
			r.UpdatedAt = s.clock.Add(time.Second)
			s.records[i] = r
			return r, nil
		}
	}
	return models.VaultRecord{}, fmt.Errorf("%w: 404", adapter.ErrNotFound)
}

func (s *memStore) DeleteRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: 404", adapter.ErrNotFound)
}

// seed stores a record encrypted under secret directly, bypassing the vault.
func (s *memStore) seed(t *testing.T, codec crypto.Codec, rec models.PlainRecord, secret []byte) models.VaultRecord {
	t.Helper()
	title, err := codec.EncryptField(rec.Title, secret)
	require.NoError(t, err)
	username, err := codec.EncryptField(rec.Username, secret)
	require.NoError(t, err)
	payload, err := codec.EncryptPayload(rec.Payload, secret)
	require.NoError(t, err)

	r, err := s.CreateRecord(context.Background(), models.RecordRequest{Title: title, Username: username, EncryptedData: payload})
	require.NoError(t, err)
	return r
}

func newTestVault(t *testing.T) (*Vault, *memStore, crypto.Codec) {
	t.Helper()
	store := newMemStore()
	codec := newTestCodec(t)
	return New(store, codec, NewSecretHolder(), logger.Nop()), store, codec
}

func gitHub() models.PlainRecord {
	return models.PlainRecord{
		Title:    "GitHub",
		Username: "me@x.com",
		Payload:  models.RecordPayload{Password: "Zx9!aB2k"},
	}
}

func titles(views []models.DecryptedView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Title)
	}
	return out
}

// ── scenarios ─────────────────────────────────────────────────────────────────

func TestVault_CreateFetchUnlockScenario(t *testing.T) {
	v, _, _ := newTestVault(t)
	ctx := context.Background()

	_, err := v.Create(ctx, gitHub(), correctHorse)
	require.NoError(t, err)
	require.NoError(t, v.Refresh(ctx))
	require.Len(t, v.Records(), 1)
	assert.Equal(t, Locked, v.State())

	err = v.Unlock(wrongHorse)
	require.ErrorIs(t, err, ErrInvalidMasterSecret)
	assert.ErrorIs(t, err, ErrDecryptionFailure)
	assert.Equal(t, Locked, v.State())
	_, err = v.Entries()
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, v.Unlock(correctHorse))
	assert.Equal(t, Unlocked, v.State())

	entries, err := v.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "GitHub", entries[0].Title)
	assert.Equal(t, "me@x.com", entries[0].Username)
	assert.False(t, entries[0].HasPayload())
}

func TestVault_UpdateRelocksScenario(t *testing.T) {
	v, _, _ := newTestVault(t)
	ctx := context.Background()

	created, err := v.Create(ctx, gitHub(), correctHorse)
	require.NoError(t, err)
	require.NoError(t, v.Refresh(ctx))
	require.NoError(t, v.Unlock(correctHorse))

	changed := gitHub()
	changed.Payload.Password = "newPass1!"
	_, err = v.Update(ctx, created.ID, changed, nil)
	require.NoError(t, err)

	assert.Equal(t, Locked, v.State())
	assert.Zero(t, v.Hidden())
	_, err = v.Entries()
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, v.Refresh(ctx))
	require.NoError(t, v.Unlock(correctHorse))

	view, err := v.View(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", view.Title)
	assert.Equal(t, "newPass1!", view.Payload.Password)
}

// ── unlock ────────────────────────────────────────────────────────────────────

func TestVault_UnlockIsAtomic(t *testing.T) {
	for n := 1; n <= 4; n++ {
		t.Run(fmt.Sprintf("%d records", n), func(t *testing.T) {
			v, store, codec := newTestVault(t)
			for i := 0; i < n-1; i++ {
				store.seed(t, codec, models.PlainRecord{Title: fmt.Sprintf("entry-%d", i), Payload: models.RecordPayload{Password: "p"}}, correctHorse)
			}
			store.seed(t, codec, models.PlainRecord{Title: "foreign", Payload: models.RecordPayload{Password: "p"}}, wrongHorse)
			require.NoError(t, v.Refresh(context.Background()))

			err := v.Unlock(correctHorse)
			require.ErrorIs(t, err, ErrInvalidMasterSecret)
			assert.Equal(t, Locked, v.State())
			assert.Zero(t, v.Hidden())

			_, err = v.Filter("")
			assert.ErrorIs(t, err, ErrLocked)
			_, err = v.View(v.Records()[0].ID)
			assert.ErrorIs(t, err, ErrLocked)
		})
	}
}

func TestVault_UnlockEmptyVault(t *testing.T) {
	v, _, _ := newTestVault(t)

	require.NoError(t, v.Unlock(correctHorse))
	entries, err := v.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVault_UnlockRejectsEmptySecret(t *testing.T) {
	v, _, _ := newTestVault(t)

	assert.ErrorIs(t, v.Unlock(nil), ErrValidation)
	assert.ErrorIs(t, v.Unlock([]byte{}), ErrValidation)
	assert.Equal(t, Locked, v.State())
}

func TestVault_UnlockTwice(t *testing.T) {
	v, _, _ := newTestVault(t)

	require.NoError(t, v.Unlock(correctHorse))
	assert.ErrorIs(t, v.Unlock(correctHorse), ErrAlreadyUnlocked)
	assert.Equal(t, Unlocked, v.State())
}

func TestVault_UnlockDoesNotKeepCallerSlice(t *testing.T) {
	v, store, codec := newTestVault(t)
	store.seed(t, codec, gitHub(), correctHorse)
	require.NoError(t, v.Refresh(context.Background()))

	secret := []byte("correct-horse")
	require.NoError(t, v.Unlock(secret))
	crypto.Wipe(secret)

	view, err := v.View(v.Records()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Zx9!aB2k", view.Payload.Password)
}

func TestVault_LockDiscardsCacheAndSecret(t *testing.T) {
	holder := NewSecretHolder()
	store := newMemStore()
	codec := newTestCodec(t)
	v := New(store, codec, holder, logger.Nop())
	store.seed(t, codec, gitHub(), correctHorse)
	require.NoError(t, v.Refresh(context.Background()))
	require.NoError(t, v.Unlock(correctHorse))
	require.True(t, holder.Held())

	v.Lock()

	assert.Equal(t, Locked, v.State())
	assert.False(t, holder.Held())
	_, err := v.Entries()
	assert.ErrorIs(t, err, ErrLocked)
	assert.Len(t, v.Records(), 1, "ciphertext list survives a lock")
}

// ── filter and view ───────────────────────────────────────────────────────────

func TestVault_Filter(t *testing.T) {
	v, store, codec := newTestVault(t)
	store.seed(t, codec, gitHub(), correctHorse)
	store.seed(t, codec, models.PlainRecord{Title: "Bank", Username: "ME@Y.ORG", Payload: models.RecordPayload{Password: "p"}}, correctHorse)
	store.seed(t, codec, models.PlainRecord{Title: "Straße", Username: "", Payload: models.RecordPayload{Password: "p"}}, correctHorse)
	require.NoError(t, v.Refresh(context.Background()))
	require.NoError(t, v.Unlock(correctHorse))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty matches all in order", query: "", want: []string{"Straße", "Bank", "GitHub"}},
		{name: "title case-insensitive", query: "git", want: []string{"GitHub"}},
		{name: "username case-insensitive", query: "X.COM", want: []string{"GitHub"}},
		{name: "shared username prefix", query: "me@", want: []string{"Bank", "GitHub"}},
		{name: "surrounding space ignored", query: "  bank ", want: []string{"Bank"}},
		{name: "folded eszett", query: "STRASSE", want: []string{"Straße"}},
		{name: "no match", query: "nomatch", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Filter(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestVault_ViewErrors(t *testing.T) {
	v, store, codec := newTestVault(t)
	good := store.seed(t, codec, gitHub(), correctHorse)
	require.NoError(t, v.Refresh(context.Background()))

	_, err := v.View(good.ID)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, v.Unlock(correctHorse))

	_, err = v.View("missing")
	assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)

	// corrupt the payload on the server; title and username stay intact
	store.mu.Lock()
	store.records[0].EncryptedData = models.Ciphertext(strings.Repeat("A", 80))
	store.mu.Unlock()
	require.NoError(t, v.Refresh(context.Background()))

	_, err = v.View(good.ID)
	assert.ErrorIs(t, err, ErrDecryptionFailure)
	assert.Equal(t, Unlocked, v.State())
}

// ── refresh ───────────────────────────────────────────────────────────────────

func TestVault_RefreshDecryptsIncrementally(t *testing.T) {
	v, store, codec := newTestVault(t)
	ctx := context.Background()
	store.seed(t, codec, gitHub(), correctHorse)
	require.NoError(t, v.Refresh(ctx))
	require.NoError(t, v.Unlock(correctHorse))

	_, err := v.Create(ctx, models.PlainRecord{Title: "Mail", Payload: models.RecordPayload{Password: "p"}}, nil)
	require.NoError(t, err)

	entries, err := v.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"GitHub"}, titles(entries), "create does not touch the cache")

	store.seed(t, codec, models.PlainRecord{Title: "Foreign", Payload: models.RecordPayload{Password: "p"}}, wrongHorse)
	require.NoError(t, v.Refresh(ctx))

	assert.Equal(t, Unlocked, v.State())
	assert.Equal(t, 1, v.Hidden())
	entries, err = v.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mail", "GitHub"}, titles(entries))
	assert.Len(t, v.Records(), 3)
}

func TestVault_RefreshErrorKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockRecordStore(ctrl)
	v := New(store, newTestCodec(t), nil, logger.Nop())

	store.EXPECT().ListRecords(gomock.Any()).Return([]models.VaultRecord{{ID: "a"}}, nil)
	require.NoError(t, v.Refresh(context.Background()))

	store.EXPECT().ListRecords(gomock.Any()).Return(nil, fmt.Errorf("%w: 401", adapter.ErrUnauthorized))
	err := v.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Len(t, v.Records(), 1)
}

func TestVault_RefreshDiscardsStaleResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockRecordStore(ctrl)
	v := New(store, newTestCodec(t), nil, logger.Nop())
	ctx := context.Background()

	newer := []models.VaultRecord{{ID: "new"}}
	older := []models.VaultRecord{{ID: "old"}}

	gomock.InOrder(
		store.EXPECT().ListRecords(gomock.Any()).DoAndReturn(func(context.Context) ([]models.VaultRecord, error) {
			// a second refresh is issued and resolves while this one is in flight
			require.NoError(t, v.Refresh(ctx))
			return older, nil
		}),
		store.EXPECT().ListRecords(gomock.Any()).Return(newer, nil),
	)

	err := v.Refresh(ctx)
	assert.ErrorIs(t, err, ErrStaleResponse)
	assert.Equal(t, newer, v.Records())
}

func TestVault_DeleteInvalidatesInFlightRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockRecordStore(ctrl)
	v := New(store, newTestCodec(t), nil, logger.Nop())
	ctx := context.Background()

	listed := []models.VaultRecord{{ID: "a"}, {ID: "b"}}
	store.EXPECT().ListRecords(gomock.Any()).Return(listed, nil)
	require.NoError(t, v.Refresh(ctx))

	gomock.InOrder(
		store.EXPECT().ListRecords(gomock.Any()).DoAndReturn(func(context.Context) ([]models.VaultRecord, error) {
			require.NoError(t, v.Delete(ctx, "a"))
			return listed, nil
		}),
		store.EXPECT().DeleteRecord(gomock.Any(), "a").Return(nil),
	)

	assert.ErrorIs(t, v.Refresh(ctx), ErrStaleResponse)
	assert.Equal(t, []models.VaultRecord{{ID: "b"}}, v.Records())
}

func TestVault_Reset(t *testing.T) {
	v, store, codec := newTestVault(t)
	store.seed(t, codec, gitHub(), correctHorse)
	require.NoError(t, v.Refresh(context.Background()))
	require.NoError(t, v.Unlock(correctHorse))

	v.Reset()

	assert.Equal(t, Locked, v.State())
	assert.Empty(t, v.Records())
}
