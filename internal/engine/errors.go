package engine

import "errors"

// ErrEmptyCatalog is returned when recommendations are requested against a catalog with no careers.
var ErrEmptyCatalog = errors.New("career catalog is empty")
