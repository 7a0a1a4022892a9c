// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// MessageResponse carries a short human-readable status.
type MessageResponse struct {
	Message string `json:"message"`
}
