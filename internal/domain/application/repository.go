package application

import (
	"context"
	"time"
)

// QueueFilter narrows the approval queue to a reviewer's working set. A nil
// MaxAmount or Country means unfiltered on that axis. Results are always
// sorted (priority_score desc, created_at asc).
type QueueFilter struct {
	Statuses  []Status
	MaxAmount *float64
	Country   *string
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row for the enclosing
	// transaction (SELECT ... FOR UPDATE).
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	Save(ctx context.Context, a *Application) error
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	ListByCountry(ctx context.Context, country string) ([]Application, error)
	ListQueue(ctx context.Context, f QueueFilter) ([]Application, error)
	ListQueueLimit(ctx context.Context, f QueueFilter, limit int) ([]Application, error)
	ListByStatus(ctx context.Context, status Status) ([]Application, error)
	ListMissingPriority(ctx context.Context) ([]Application, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByUserBefore(ctx context.Context, userID string, before time.Time) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountByCountryStatus(ctx context.Context, country string, statuses []Status) (int64, error)
	StatusStats(ctx context.Context) ([]StatusStat, error)
	PriorityStats(ctx context.Context) (*PriorityStats, error)
}
