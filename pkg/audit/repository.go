package audit

import (
	"context"
)

// Repository defines the interface for audit log persistence.
// The log is append-only: there is no update or delete operation.
type Repository interface {
	// Append persists one entry.
	Append(ctx context.Context, entry Entry) error
	// Recent returns up to limit entries ordered newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
