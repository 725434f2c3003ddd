package utils

// ContextKey is the type for request-context values set by middleware.
type ContextKey string
