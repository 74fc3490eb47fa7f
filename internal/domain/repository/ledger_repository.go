package repository

import (
	"context"

	"reflourish/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerRepository defines the interface for point ledger persistence.
// The ledger is append-only: there is deliberately no update or delete.
type LedgerRepository interface {
	// AppendEntry persists a new immutable ledger entry.
	AppendEntry(ctx context.Context, entry *entity.LedgerEntry) error

	// FindEntriesByUser retrieves all entries for a user, newest first.
	FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error)

	// FindEntriesByUserAndKind retrieves a user's entries of one kind, newest first.
	FindEntriesByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.TransactionKind) ([]*entity.LedgerEntry, error)

	// SumPointsByUser returns the sum of all point deltas for a user.
	// This is the authoritative balance; the profile counter is a cache.
	SumPointsByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// CountEntriesByPackage counts entries referencing a package. A
	// completed delivery must produce exactly one.
	CountEntriesByPackage(ctx context.Context, packageID uuid.UUID) (int64, error)
}
