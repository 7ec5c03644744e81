package domain

import "errors"

var (
	// ErrStoreUnavailable wraps any failure talking to the database.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrDuplicateWord is returned when a word with the same lower-cased text exists.
	ErrDuplicateWord = errors.New("word already exists")
	// ErrWordNotFound is returned when a referenced word has been deleted.
	ErrWordNotFound = errors.New("word not found")
	// ErrEmptyInput is returned for blank dialogue input.
	ErrEmptyInput = errors.New("empty input")
)
