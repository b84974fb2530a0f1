package db

import "errors"

// ErrNotFound is returned when a document is not found in Firestore.
// Shared by all repositories in this package.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when a document with the same ID already exists.
var ErrAlreadyExists = errors.New("document already exists")
