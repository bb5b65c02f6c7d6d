package disbursement

import "context"

type Repository interface {
	Create(ctx context.Context, d *Disbursement) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Disbursement, error)
	ListAll(ctx context.Context) ([]Disbursement, error)
	SumAll(ctx context.Context) (float64, error)
}
