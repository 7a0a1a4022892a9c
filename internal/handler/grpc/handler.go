// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the vault service over gRPC.
//
// Messages are plain Go structs encoded with a JSON codec registered under
// the "json" content subtype, so no protobuf code generation is involved.
// Every call must carry "authorization: Bearer <token>" metadata with the
// session token issued by the HTTP login endpoint.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"google.golang.org/grpc"
)

// Handler implements VaultServer on top of the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the vault service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	RegisterVaultServer(s, h)
}

// ServerOptions returns the interceptors the handler relies on.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withLogger, h.auth),
	}
}

func (h *Handler) List(ctx context.Context, _ *ListRequest) (*ListResponse, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	records, err := h.services.VaultService.List(ctx, userID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &ListResponse{Records: records, Length: len(records)}, nil
}

func (h *Handler) Create(ctx context.Context, in *CreateRequest) (*models.VaultRecord, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	created, err := h.services.VaultService.Create(ctx, userID, in.Record)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &created, nil
}

func (h *Handler) Update(ctx context.Context, in *UpdateRequest) (*models.VaultRecord, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	updated, err := h.services.VaultService.Update(ctx, userID, in.ID, in.Record)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &updated, nil
}

func (h *Handler) Delete(ctx context.Context, in *DeleteRequest) (*DeleteResponse, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.VaultService.Delete(ctx, userID, in.ID); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &DeleteResponse{}, nil
}
