// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = []struct {
	err  error
	code codes.Code
	msg  string
}{
	{service.ErrInvalidDataProvided, codes.InvalidArgument, ""},
	{service.ErrRecordNotFound, codes.NotFound, app.MsgRecordNotFound},
	{service.ErrUnauthorized, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},
}

// toStatus converts a service error to a gRPC status. Unknown errors become
// Internal without leaking their text.
func toStatus(ctx context.Context, err error) error {
	for _, m := range errorCodeMap {
		if errors.Is(err, m.err) {
			if m.msg == "" {
				return status.Error(m.code, err.Error())
			}
			return status.Error(m.code, m.msg)
		}
	}

	logger.FromContext(ctx).Err(err).Msg("internal error in gRPC call")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
