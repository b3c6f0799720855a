package httpserver

import "errors"

var (
	// ErrStart is returned when a start hook fails or the listener cannot be opened.
	ErrStart = errors.New("httpserver: start failed")

	// ErrServe is returned when the listener fails while serving.
	ErrServe = errors.New("httpserver: serve failed")

	// ErrShutdown is returned when draining connections or a shutdown hook fails.
	ErrShutdown = errors.New("httpserver: shutdown failed")

	ErrAlreadyRunning = errors.New("httpserver: already running")
)
