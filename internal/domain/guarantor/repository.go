package guarantor

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, gs []*Guarantor) error
	GetByGuarantorID(ctx context.Context, guarantorID string) (*Guarantor, error)
	Save(ctx context.Context, g *Guarantor) error
	ListByApplication(ctx context.Context, applicationID string) ([]Guarantor, error)
	ListByUser(ctx context.Context, userID string) ([]Guarantor, error)
	ListAll(ctx context.Context) ([]Guarantor, error)
	CountPendingByUser(ctx context.Context, userID string) (int64, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
}
