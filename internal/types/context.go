package types

import "context"

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserName  ContextKey = "ctx_user_name"
	CtxRole      ContextKey = "ctx_role"

	HeaderRequestID = "X-Request-ID"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

func GetUserName(ctx context.Context) string {
	if name, ok := ctx.Value(CtxUserName).(string); ok {
		return name
	}
	return ""
}

// GetRole returns the acting role resolved by the session middleware.
// Callers that reach a service without an authenticated session see the
// empty role, which fails Validate.
func GetRole(ctx context.Context) Role {
	if role, ok := ctx.Value(CtxRole).(Role); ok {
		return role
	}
	return ""
}
