package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrPersistenceFailed covers a mutation the store reported as zero
	// affected rows. Raw store errors, including a foreign-key violation
	// for a dangling author_id, are wrapped separately.
	ErrPersistenceFailed = errors.New("book persistence failed")
)
