package services

// Custom errors. Handlers map these to HTTP responses in one place.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type RateLimitError struct{ Message string }

func (e *RateLimitError) Error() string { return e.Message }

// ConfigurationError means a deployment-level problem (missing Gemini API
// key). It is not recoverable at request time.
type ConfigurationError struct{ Message string }

func (e *ConfigurationError) Error() string { return e.Message }

// GenerationError wraps any failure from the generation service: network,
// auth, quota, or a malformed reply. Only the human-readable description of
// the cause is carried.
type GenerationError struct{ Message string }

func (e *GenerationError) Error() string { return e.Message }

// StorageError marks a persistence failure so it is never mistaken for a
// generation failure.
type StorageError struct{ Message string }

func (e *StorageError) Error() string { return e.Message }
