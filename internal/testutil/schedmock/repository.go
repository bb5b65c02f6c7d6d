// Package schedmock is a function-backed mock of schedule.Repository.
package schedmock

import (
	"context"
	"errors"

	domain "fund-management-backend/internal/domain/schedule"
)

var ErrNotStubbed = errors.New("schedmock: method not stubbed")

type Repo struct {
	CreateBatchFn       func(ctx context.Context, rows []*domain.Installment) error
	ListByUserFn        func(ctx context.Context, userID string) ([]domain.Installment, error)
	ListByApplicationFn func(ctx context.Context, applicationID string) ([]domain.Installment, error)
	SumPaidFn           func(ctx context.Context) (float64, error)
	SumPendingByUserFn  func(ctx context.Context, userID string) (float64, error)
}

func (m *Repo) CreateBatch(ctx context.Context, rows []*domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rows)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Installment, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID string) ([]domain.Installment, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) SumPaid(ctx context.Context) (float64, error) {
	if m.SumPaidFn != nil {
		return m.SumPaidFn(ctx)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) SumPendingByUser(ctx context.Context, userID string) (float64, error) {
	if m.SumPendingByUserFn != nil {
		return m.SumPendingByUserFn(ctx, userID)
	}
	return 0, ErrNotStubbed
}
