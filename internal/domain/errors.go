package domain

import "errors"

// Storage and session error types

var (
	// ErrQuotaExceeded indicates the storage backing refused a write because it is full
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStorageUnavailable indicates the storage backing could not be reached
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnknownStorageDriver indicates the configured storage driver is not supported
	ErrUnknownStorageDriver = errors.New("unknown storage driver")

	// ErrInvalidUserRecord indicates a login was attempted with a missing or malformed user record
	ErrInvalidUserRecord = errors.New("invalid user record")

	// ErrInvalidProduct indicates a product without an id was offered to the cart
	ErrInvalidProduct = errors.New("invalid product")
)
