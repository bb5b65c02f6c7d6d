// Package configmock is a function-backed mock of sysconfig.Repository.
// The zero value serves the package defaults, which is what most tests want.
package configmock

import (
	"context"

	domain "fund-management-backend/internal/domain/sysconfig"
)

type Repo struct {
	GetFn    func(ctx context.Context) (*domain.Config, error)
	UpdateFn func(ctx context.Context, c *domain.Config) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Config, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return domain.DefaultConfig(), nil
}

func (m *Repo) Update(ctx context.Context, c *domain.Config) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}
	return nil
}

// Static returns a mock that always serves cfg.
func Static(cfg *domain.Config) *Repo {
	return &Repo{GetFn: func(context.Context) (*domain.Config, error) { return cfg, nil }}
}
