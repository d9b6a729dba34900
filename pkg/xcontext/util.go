package xcontext

import "context"

// WithRequestPrincipal records the authenticated actor for this request. The
// identity collaborator owns authentication; this package only carries the
// result.
func WithRequestPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// RequestPrincipal returns the empty string for an anonymous caller.
func RequestPrincipal(ctx context.Context) string {
	principal, ok := ctx.Value(principalKey{}).(string)
	if !ok {
		return ""
	}

	return principal
}
