package loan

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// Most-recent-first listings.
	ListByUserID(ctx context.Context, userID string) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	// UpdateStatusIfPending transitions the application only while its stored
	// status is still pending. Zero rows affected means another reviewer got
	// there first and must surface as ErrAlreadyProcessed, never as success.
	UpdateStatusIfPending(ctx context.Context, applicationID string, newStatus Status, adminID, notes string) error
}
