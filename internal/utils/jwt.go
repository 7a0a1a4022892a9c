// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// Registered claims set on the token:
//   - iss: issuer
//   - sub: userID in decimal
//   - iat: now
//   - exp: now + tokenDuration
//
// Parameters:
//
//	issuer        - name of the issuing server, checked again on validation
//	userID        - id of the authenticated user
//	tokenDuration - token lifetime, must be positive
//	signKey       - HMAC secret shared with ValidateAndParseJWTToken
//
// Returns:
//
//	models.Token - the signed string, its claims and the user id
//	error        - non-nil when a parameter is empty or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("pass-vault", user.UserID, 24*time.Hour, cfg.App.TokenSignKey)
//	if err != nil {
//		return models.Token{}, err
//	}
//	w.Header().Set("Authorization", "Bearer "+token.SignedString)
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the user id
// from its subject.
//
// A token is accepted only when all of these hold:
//   - it is signed with HS256 using tokenSignKey
//   - its iss equals tokenIssuer
//   - it has an exp claim in the future
//   - its sub is a non-empty decimal int64
//
// Parameters:
//
//	tokenString  - the raw token, without the "Bearer " prefix
//	tokenSignKey - HMAC secret the token was signed with
//	tokenIssuer  - expected iss value
//
// Returns:
//
//	models.Token - the parsed token with UserID filled in
//	error        - non-nil for any rejected token
//
// Example usage:
//
//	raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
//	if err != nil {
//		return err
//	}
//	token, err := utils.ValidateAndParseJWTToken(raw, signKey, "pass-vault")
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" value.
// The scheme is matched case-insensitively and surrounding spaces are ignored.
//
// Example usage:
//
//	utils.ParseBearerToken("Bearer eyJhbGci...") // "eyJhbGci...", nil
//	utils.ParseBearerToken("Basic dXNlcg==")     // "", error
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}

// ParseUserIDFromJWT reads the subject of tokenString without verifying the
// signature. It is meant for the client, which cannot verify server tokens.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
