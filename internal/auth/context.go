package auth

import (
	"context"
)

// SystemUserID identifies requests authenticated with the admin API key
const SystemUserID = "00000000-0000-0000-0000-000000000000"

// UserContext holds authenticated user information
type UserContext struct {
	UserID string
	Email  string
	Role   string
	// IsSystem is set for API key requests
	IsSystem bool
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// OwnerID returns the ID to record as the owner of new records, or nil for
// system requests
func (u *UserContext) OwnerID() *string {
	if u == nil || u.IsSystem || u.UserID == "" {
		return nil
	}
	id := u.UserID
	return &id
}

func systemUser() *UserContext {
	return &UserContext{
		UserID:   SystemUserID,
		Email:    "system@abchroy.local",
		Role:     "service_role",
		IsSystem: true,
	}
}
