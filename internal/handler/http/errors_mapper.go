// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// errorStatusMap is checked in order. An empty msg sends the error text,
// which for validation failures names the offending field.
var errorStatusMap = []struct {
	err    error
	status int
	msg    string
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrUnauthorized, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrEmailAlreadyTaken, http.StatusConflict, app.MsgEmailAlreadyTaken},
	{service.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},
	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{ErrNoSessionToken, http.StatusUnauthorized, app.MsgNoSessionToken},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNoSessionToken},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			if m.msg == "" {
				return m.status, err.Error()
			}
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status mapped from err. Internal errors are
// logged in full and reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := statusFromError(err)
	log := logger.FromRequest(r)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}
	http.Error(w, body, status)
}
