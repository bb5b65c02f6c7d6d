// Package fundpoolmock is an in-memory fundpool.Repository for tests. It
// applies deltas against a held singleton so flows can assert ledger state,
// and individual methods can still be overridden.
package fundpoolmock

import (
	"context"
	"time"

	domain "fund-management-backend/internal/domain/fundpool"
)

type Repo struct {
	Pool *domain.FundPool

	GetFn        func(ctx context.Context) (*domain.FundPool, error)
	ApplyDeltaFn func(ctx context.Context, d domain.Delta, actor string) (*domain.FundPool, error)
	ReplaceFn    func(ctx context.Context, p *domain.FundPool) error
}

func New(pool *domain.FundPool) *Repo {
	if pool == nil {
		pool = &domain.FundPool{}
	}
	return &Repo{Pool: pool}
}

func (m *Repo) Get(ctx context.Context) (*domain.FundPool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	cp := *m.Pool
	return &cp, nil
}

func (m *Repo) ApplyDelta(ctx context.Context, d domain.Delta, actor string) (*domain.FundPool, error) {
	if m.ApplyDeltaFn != nil {
		return m.ApplyDeltaFn(ctx, d, actor)
	}
	m.Pool.TotalDeposits += d.Deposits
	m.Pool.TotalDisbursed += d.Disbursements
	m.Pool.TotalRepaid += d.Repayments
	m.Pool.Recompute()
	m.Pool.LastUpdated = time.Now().UTC()
	m.Pool.UpdatedBy = actor
	cp := *m.Pool
	return &cp, nil
}

func (m *Repo) Replace(ctx context.Context, p *domain.FundPool) error {
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, p)
	}
	cp := *p
	m.Pool = &cp
	return nil
}
