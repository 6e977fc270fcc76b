package utils

import (
	"context"
)

type contextKey string

const (
	AdminIDKey    contextKey = "admin_id"
	AdminEmailKey contextKey = "admin_email"
	RoleKey       contextKey = "role"
)

// SetAdminContext stores the authenticated admin identity on the context.
func SetAdminContext(ctx context.Context, id, email string) context.Context {
	ctx = context.WithValue(ctx, AdminIDKey, id)
	ctx = context.WithValue(ctx, AdminEmailKey, email)
	ctx = context.WithValue(ctx, RoleKey, "admin")
	return ctx
}

func GetAdminIDFromContext(ctx context.Context) (string, bool) {
	idVal := ctx.Value(AdminIDKey)
	if idVal == nil {
		return "", false
	}

	id, ok := idVal.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(AdminEmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	return email, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}
