package domain

import "errors"

// ErrSessionNotFound indicates an unknown session ID.
var ErrSessionNotFound = errors.New("session not found")

// ErrPageNotStored indicates no persisted page number exists for a session.
var ErrPageNotStored = errors.New("page not stored")
