package schedule

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, rows []*Installment) error
	ListByUser(ctx context.Context, userID string) ([]Installment, error)
	ListByApplication(ctx context.Context, applicationID string) ([]Installment, error)
	// SumPaid aggregates paid installments; it is the total_repaid input to
	// fund-pool reconciliation.
	SumPaid(ctx context.Context) (float64, error)
	SumPendingByUser(ctx context.Context, userID string) (float64, error)
}
