package core

import "errors"

// ErrEmptyMessage is returned for empty or whitespace-only input. It is a
// validation outcome, not a failure.
var ErrEmptyMessage = errors.New("message is empty")
