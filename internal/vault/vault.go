// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/text/cases"
)

// cacheEntry is the decrypted title and username of one record together
// with the ciphertexts they came from. A record whose ciphertext no longer
// matches its entry is treated as not cached.
type cacheEntry struct {
	view           models.DecryptedView
	foldTitle      string
	foldUsername   string
	titleCipher    models.Ciphertext
	usernameCipher models.Ciphertext
}

func (e cacheEntry) matches(r models.VaultRecord) bool {
	return e.titleCipher == r.Title && e.usernameCipher == r.Username
}

// Vault is the client-side record list with its unlock state machine.
// All methods are safe for concurrent use.
type Vault struct {
	mu sync.Mutex

	store  RecordStore
	codec  crypto.Codec
	secret *SecretHolder
	logger *logger.Logger

	state   atomic.Int32
	records []models.VaultRecord
	cache   map[string]cacheEntry
	hidden  int
	fold    cases.Caser

	// seq is the latest issued request token. Refresh results carrying an
	// older token are discarded.
	seq atomic.Uint64
}

// New returns a Locked vault with no records. holder may be shared with
// other components that need the secret while the vault is unlocked.
func New(store RecordStore, codec crypto.Codec, holder *SecretHolder, logger *logger.Logger) *Vault {
	if holder == nil {
		holder = NewSecretHolder()
	}
	return &Vault{
		store:  store,
		codec:  codec,
		secret: holder,
		logger: logger,
		fold:   cases.Fold(),
	}
}

// State never blocks, so a renderer can poll it during a long unlock.
func (v *Vault) State() State {
	return State(v.state.Load())
}

func (v *Vault) setState(s State) {
	v.state.Store(int32(s))
}

// Records returns a copy of the fetched ciphertext records, newest first.
// It is available in every state.
func (v *Vault) Records() []models.VaultRecord {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.records)
}

// Hidden is the number of fetched records left out of Entries because they
// could not be decrypted with the current secret. It is zero while Locked.
func (v *Vault) Hidden() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.hidden
}

// Refresh fetches the record list. It never changes the lock state. While
// Unlocked, new or changed records are decrypted with the held secret; those
// that fail are hidden until the next Unlock.
//
// A response is applied only if no other Refresh or Delete was issued after
// it started; otherwise ErrStaleResponse is returned and nothing changes.
func (v *Vault) Refresh(ctx context.Context) error {
	token := v.seq.Add(1)

	records, err := v.store.ListRecords(ctx)
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Refresh").Msg("error fetching records")
		return mapStoreError(err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.seq.Load() {
		v.logger.Debug().Str("func", "Vault.Refresh").Uint64("token", token).Msg("discarding stale response")
		return ErrStaleResponse
	}

	v.records = records
	if v.State() == Unlocked {
		v.reconcileCache()
	}

	v.logger.Debug().Str("func", "Vault.Refresh").
		Int("records", len(records)).
		Int("hidden", v.hidden).
		Str("state", v.State().String()).
		Msg("records refreshed")
	return nil
}

// reconcileCache drops entries of vanished records and decrypts new or
// changed ones with the held secret. Callers hold v.mu.
func (v *Vault) reconcileCache() {
	next := make(map[string]cacheEntry, len(v.records))
	hidden := 0

	_ = v.secret.With(func(secret []byte) error {
		for _, r := range v.records {
			if entry, ok := v.cache[r.ID]; ok && entry.matches(r) {
				next[r.ID] = entry
				continue
			}
			entry, err := v.decryptEntry(r, secret)
			if err != nil {
				hidden++
				continue
			}
			next[r.ID] = entry
		}
		return nil
	})

	v.cache = next
	v.hidden = hidden
}

func (v *Vault) decryptEntry(r models.VaultRecord, secret []byte) (cacheEntry, error) {
	title, err := v.codec.DecryptField(r.Title, secret)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("record %s title: %w", r.ID, err)
	}
	username, err := v.codec.DecryptField(r.Username, secret)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("record %s username: %w", r.ID, err)
	}

	return cacheEntry{
		view: models.DecryptedView{
			ID:        r.ID,
			Title:     title,
			Username:  username,
			CreatedAt: r.CreatedAt,
		},
		foldTitle:      v.fold.String(title),
		foldUsername:   v.fold.String(username),
		titleCipher:    r.Title,
		usernameCipher: r.Username,
	}, nil
}

// Unlock decrypts the title and username of every fetched record with
// secret. If any of them fails the vault goes back to Locked, nothing is
// cached and the error wraps both ErrInvalidMasterSecret and
// ErrDecryptionFailure. An empty record list unlocks.
//
// The vault keeps its own copy of secret. Each field is a separate Argon2id
// derivation, so Unlock blocks other vault calls for roughly 2N derivations.
func (v *Vault) Unlock(secret []byte) error {
	if len(secret) == 0 {
		return fmt.Errorf("%w: master password is required", ErrValidation)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.State() == Unlocked {
		return ErrAlreadyUnlocked
	}
	v.setState(Unlocking)

	cache := make(map[string]cacheEntry, len(v.records))
	for _, r := range v.records {
		entry, err := v.decryptEntry(r, secret)
		if err != nil {
			v.discardLocked()
			v.logger.Warn().Str("func", "Vault.Unlock").Int("records", len(v.records)).Msg("unlock rejected")
			return fmt.Errorf("%w: %w", ErrInvalidMasterSecret, err)
		}
		cache[r.ID] = entry
	}

	v.secret.Unlock(secret)
	v.cache = cache
	v.hidden = 0
	v.setState(Unlocked)

	v.logger.Info().Str("func", "Vault.Unlock").Int("records", len(cache)).Msg("vault unlocked")
	return nil
}

// Lock discards the cache and wipes the held secret.
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.discardLocked()
	v.logger.Info().Str("func", "Vault.Lock").Msg("vault locked")
}

// Reset locks the vault and forgets the fetched records, e.g. on logout.
// In-flight refreshes are invalidated.
func (v *Vault) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq.Add(1)
	v.discardLocked()
	v.records = nil
}

func (v *Vault) discardLocked() {
	v.secret.Lock()
	v.cache = nil
	v.hidden = 0
	v.setState(Locked)
}
