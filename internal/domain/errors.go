package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("resource not found")
	ErrIssuerMissing      = errors.New("issuer missing for campaign")
	ErrConflict           = errors.New("conflict")
	ErrStateConflict      = errors.New("state conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
