package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gifboard/pkg/token"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

var (
	errTokenMissing   = errors.New("no bearer token")
	errSchemeMismatch = errors.New("authorization scheme is not Bearer")
)

// Auth verifies the bearer token and puts the user id in the request context.
// A missing or empty token is 401. A token under another scheme or one that
// fails verification is 403.
func Auth(issuer token.Issuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r.Header.Get("Authorization"))
			if errors.Is(err, errTokenMissing) {
				utils.ResponseUnauthorized(w, "Access token required")
				return
			}

			var claims *token.Claims
			if err == nil {
				claims, err = issuer.Verify(raw)
			}
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, token.ErrExpired) {
					msg = "Token expired"
				}
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, msg)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "<scheme> <token>". The scheme is
// matched case-insensitively; a header without a token part counts as missing.
func bearerToken(header string) (string, error) {
	scheme, raw, _ := strings.Cut(strings.TrimSpace(header), " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errTokenMissing
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", errSchemeMismatch
	}
	return raw, nil
}
