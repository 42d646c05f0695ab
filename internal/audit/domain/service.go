package domain

import "context"

// Service records audit entries. Actor identity is taken from the request
// context when present.
type Service interface {
	AuditLog(ctx context.Context, action, targetType, targetID string, metadata map[string]any) error
}
