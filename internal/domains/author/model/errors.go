package model

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")

	// ErrPersistenceFailed covers a mutation the store reported as zero
	// affected rows. Raw store errors are wrapped separately.
	ErrPersistenceFailed = errors.New("author persistence failed")
)
