// Package store persists users and tasks. Every operation runs on an explicit
// *sql.Tx owned by the request boundary, which commits on success and rolls
// back on any error, so a failed request leaves no partial state.
package store

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")
)
