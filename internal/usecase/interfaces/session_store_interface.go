package interfaces

import "context"

// ISessionStore holds issued admin session tokens (e.g. Redis with a TTL).
type ISessionStore interface {
	Issue(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}
