// Package guarantormock is a function-backed mock of guarantor.Repository.
package guarantormock

import (
	"context"
	"errors"

	domain "fund-management-backend/internal/domain/guarantor"
)

var ErrNotStubbed = errors.New("guarantormock: method not stubbed")

type Repo struct {
	CreateBatchFn        func(ctx context.Context, gs []*domain.Guarantor) error
	GetByGuarantorIDFn   func(ctx context.Context, guarantorID string) (*domain.Guarantor, error)
	SaveFn               func(ctx context.Context, g *domain.Guarantor) error
	ListByApplicationFn  func(ctx context.Context, applicationID string) ([]domain.Guarantor, error)
	ListByUserFn         func(ctx context.Context, userID string) ([]domain.Guarantor, error)
	ListAllFn            func(ctx context.Context) ([]domain.Guarantor, error)
	CountPendingByUserFn func(ctx context.Context, userID string) (int64, error)
	StatusDistributionFn func(ctx context.Context) ([]domain.StatusCount, error)
}

func (m *Repo) CreateBatch(ctx context.Context, gs []*domain.Guarantor) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, gs)
	}
	return nil
}

func (m *Repo) GetByGuarantorID(ctx context.Context, guarantorID string) (*domain.Guarantor, error) {
	if m.GetByGuarantorIDFn != nil {
		return m.GetByGuarantorIDFn(ctx, guarantorID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) Save(ctx context.Context, g *domain.Guarantor) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID string) ([]domain.Guarantor, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Guarantor, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Guarantor, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) CountPendingByUser(ctx context.Context, userID string) (int64, error) {
	if m.CountPendingByUserFn != nil {
		return m.CountPendingByUserFn(ctx, userID)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	if m.StatusDistributionFn != nil {
		return m.StatusDistributionFn(ctx)
	}
	return nil, ErrNotStubbed
}
