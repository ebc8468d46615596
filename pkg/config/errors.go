package config

import "errors"

// Package-specific errors
var (
	// ErrParsingEnv is returned when environment variables cannot be parsed into the config struct
	ErrParsingEnv = errors.New("failed to parse environment variables into config")

	// ErrReadingFile is returned when a config file cannot be read
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingFile is returned when a config file cannot be unmarshaled
	ErrParsingFile = errors.New("failed to parse config file")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
