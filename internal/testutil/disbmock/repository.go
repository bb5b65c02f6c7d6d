// Package disbmock is a function-backed mock of disbursement.Repository.
package disbmock

import (
	"context"
	"errors"

	domain "fund-management-backend/internal/domain/disbursement"
)

var ErrNotStubbed = errors.New("disbmock: method not stubbed")

type Repo struct {
	CreateFn             func(ctx context.Context, d *domain.Disbursement) error
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Disbursement, error)
	ListAllFn            func(ctx context.Context) ([]domain.Disbursement, error)
	SumAllFn             func(ctx context.Context) (float64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Disbursement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Disbursement, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Disbursement, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) SumAll(ctx context.Context) (float64, error) {
	if m.SumAllFn != nil {
		return m.SumAllFn(ctx)
	}
	return 0, ErrNotStubbed
}
