package transaction

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTxID(ctx context.Context, txID string) (*Transaction, error)
	// Most-recent-first, paginated.
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]Transaction, error)
	// UpdateStatusIfPending is the only permitted mutation: the review flip
	// on deposits/withdrawals. Guarded by status=pending; zero rows affected
	// surfaces as ErrAlreadyProcessed.
	UpdateStatusIfPending(ctx context.Context, txID string, newStatus Status) error
}
