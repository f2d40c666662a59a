package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document. Repositories
// translate mongo.ErrNoDocuments so callers never depend on driver errors.
var ErrNotFound = errors.New("document not found")
