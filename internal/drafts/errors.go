package drafts

import "errors"

// ErrNotFound indicates the draft does not exist.
var ErrNotFound = errors.New("draft not found")

// ErrInvalidInput indicates a save or update request that fails validation.
var ErrInvalidInput = errors.New("invalid input")
