package repository

import "errors"

// Expected outcomes of repository operations. Anything else coming back from
// a repository is an unclassified store failure and propagates as-is.
var (
	// ErrNotFound covers both a genuinely absent entity and an entity owned
	// by a different user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when creating an entity under an id that
	// is already stored.
	ErrAlreadyExists = errors.New("already exists")
)
