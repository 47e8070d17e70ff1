package repository

import "errors"

// Sentinel kinds for storage errors.
var (
	ErrMigrate = errors.New("migration failed")
)
