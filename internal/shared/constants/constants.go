package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// Gin context keys set by the auth middleware.
	ContextKeyAdminUsername = "admin_username"
	ContextKeyAdminRole     = "admin_role"
	ContextKeyRequestID     = "request_id"

	RoleAdmin = "admin"

	TableTickets        = "tickets"
	TableTicketMessages = "ticket_messages"

	RedisKeyServerStatus  = "leafsmp:server:status"
	RedisChannelChatEvent = "leafsmp:chat:messages"
)
