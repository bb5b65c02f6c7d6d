package deposit

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deposit) error
	ListByUser(ctx context.Context, userID string) ([]Deposit, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Deposit, error)
	ListAllWithUsers(ctx context.Context) ([]WithUser, error)
	// SumCompletedByUser aggregates the user's completed deposits; this is
	// the guarantor-eligibility input.
	SumCompletedByUser(ctx context.Context, userID string) (float64, error)
	SumCompleted(ctx context.Context) (float64, error)
	SumCompletedByCountry(ctx context.Context, country string) (float64, error)
}
