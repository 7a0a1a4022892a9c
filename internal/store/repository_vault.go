// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultRepository is the SQL implementation of [VaultRepository]. It never
// looks inside the ciphertext columns.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultRepository) ListRecords(ctx context.Context, userID int64) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := v.buildListRecordsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.ListRecords").Msg("error building query")
		return nil, err
	}

	var results []models.VaultRecord
	err = v.withRetry(ctx, "vaultRepository.ListRecords", func() error {
		var queryErr error
		results, queryErr = v.queryRecords(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.ListRecords").
			Int64("user_id", userID).
			Msg("failed to list vault records")
		return nil, err
	}

	return results, nil
}

func (v *vaultRepository) queryRecords(ctx context.Context, query string, args []any) ([]models.VaultRecord, error) {
	rows, err := v.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.VaultRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (v *vaultRepository) CreateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := v.buildCreateRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.CreateRecord").Msg("error building query")
		return models.VaultRecord{}, err
	}

	var created models.VaultRecord
	err = v.withWriteRetry(ctx, "vaultRepository.CreateRecord", func() error {
		var scanErr error
		created, scanErr = scanRecord(v.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.CreateRecord").
			Str("id", record.ID).
			Int64("user_id", record.UserID).
			Msg("failed to insert vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "vaultRepository.CreateRecord").
		Str("id", created.ID).
		Int64("user_id", created.UserID).
		Msg("vault record created")
	return created, nil
}

func (v *vaultRepository) UpdateRecord(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := v.buildUpdateRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.UpdateRecord").Msg("error building query")
		return models.VaultRecord{}, err
	}

	var updated models.VaultRecord
	err = v.withRetry(ctx, "vaultRepository.UpdateRecord", func() error {
		var scanErr error
		updated, scanErr = scanRecord(v.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Warn().
			Str("func", "vaultRepository.UpdateRecord").
			Str("id", record.ID).
			Int64("user_id", record.UserID).
			Msg("record not found")
		return models.VaultRecord{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).
			Str("func", "vaultRepository.UpdateRecord").
			Str("id", record.ID).
			Msg("failed to update vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (v *vaultRepository) DeleteRecord(ctx context.Context, id string, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := v.buildDeleteRecordQuery(id, userID)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.DeleteRecord").Msg("error building query")
		return err
	}

	var affected int64
	err = v.withWriteRetry(ctx, "vaultRepository.DeleteRecord", func() error {
		res, execErr := v.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.DeleteRecord").
			Str("id", id).
			Msg("failed to delete vault record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "vaultRepository.DeleteRecord").
			Str("id", id).
			Int64("user_id", userID).
			Msg("record not found")
		return ErrRecordNotFound
	}

	log.Info().
		Str("func", "vaultRepository.DeleteRecord").
		Str("id", id).
		Int64("user_id", userID).
		Msg("vault record deleted")
	return nil
}
