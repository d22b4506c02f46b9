package middleware

// Context keys used within the application middleware and handlers.
const (
	// UserIDKey is the gin context key for the authenticated username.
	UserIDKey = "userID"
	// RequestIDKey is the gin context key for the per-request ID.
	RequestIDKey = "request_id"
)
