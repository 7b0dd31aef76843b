package service

import "errors"

// Common service errors
var (
	// ErrNotLoaded is returned when a view is requested for a session without an analyzed upload
	ErrNotLoaded = errors.New("no file loaded")
)
