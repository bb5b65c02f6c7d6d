package approval

import "context"

type Repository interface {
	Create(ctx context.Context, h *History) error
	ListByApplication(ctx context.Context, applicationID string) ([]History, error)
}
