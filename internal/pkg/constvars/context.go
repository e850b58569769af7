package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
	CONTEXT_AUTH_USER_KEY  contextKey = "auth_user"
)
