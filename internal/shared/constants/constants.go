package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"

	// Database table names
	TableUsers   = "users"
	TableTickets = "tickets"
	TableReviews = "reviews"
	TableFollows = "follows"
)
