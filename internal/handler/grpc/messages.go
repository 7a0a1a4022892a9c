// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "github.com/MKhiriev/go-pass-vault/models"

type ListRequest struct{}

type ListResponse struct {
	Records []models.VaultRecord `json:"data"`
	Length  int                  `json:"length"`
}

type CreateRequest struct {
	Record models.RecordRequest `json:"record"`
}

type UpdateRequest struct {
	ID     string               `json:"id"`
	Record models.RecordRequest `json:"record"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type DeleteResponse struct{}
