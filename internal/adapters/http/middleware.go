package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyClaims    ctxKey = "claims"
)

const roleAdmin = "ADMIN"

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "InternalError", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.InfoContext(r.Context(), "request",
				"module", "http",
				"layer", "adapter",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestIDFromContext(r.Context()),
			)
		})
	}
}

func bearerTokenFromHeader(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", domain.ErrUnauthorized
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}

func claimsFromContext(ctx context.Context) (ports.AuthClaims, bool) {
	v := ctx.Value(ctxKeyClaims)
	claims, ok := v.(ports.AuthClaims)
	return claims, ok
}

func contextWithClaims(ctx context.Context, claims ports.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, claims)
}

func requestIDFromContext(ctx context.Context) string {
	v := ctx.Value(ctxKeyRequestID)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func mapDomainError(err error) (int, string, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "VALIDATION_ERROR", "ValidationError", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "UnauthorizedError", "invalid or missing credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "ForbiddenError", "admin role required"
	case errors.Is(err, domain.ErrIssuerMissing):
		return http.StatusNotFound, "ISSUER_NOT_FOUND", "NotFoundError", "issuer not found for campaign"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "NotFoundError", "campaign not found"
	case errors.Is(err, domain.ErrStateConflict):
		return http.StatusConflict, "STATE_CONFLICT", "StateConflictError", err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT", "ConflictError", err.Error()
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "ServiceError", "service unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "InternalError", "internal server error"
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, code, errType, msg := mapDomainError(err)
	writeError(w, status, code, errType, msg)
}
