// Package depositmock is a function-backed mock of deposit.Repository.
package depositmock

import (
	"context"
	"errors"

	domain "fund-management-backend/internal/domain/deposit"
)

var ErrNotStubbed = errors.New("depositmock: method not stubbed")

type Repo struct {
	CreateFn                func(ctx context.Context, d *domain.Deposit) error
	ListByUserFn            func(ctx context.Context, userID string) ([]domain.Deposit, error)
	ListRecentByUserFn      func(ctx context.Context, userID string, limit int) ([]domain.Deposit, error)
	ListAllWithUsersFn      func(ctx context.Context) ([]domain.WithUser, error)
	SumCompletedByUserFn    func(ctx context.Context, userID string) (float64, error)
	SumCompletedFn          func(ctx context.Context) (float64, error)
	SumCompletedByCountryFn func(ctx context.Context, country string) (float64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Deposit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Deposit, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Deposit, error) {
	if m.ListRecentByUserFn != nil {
		return m.ListRecentByUserFn(ctx, userID, limit)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListAllWithUsers(ctx context.Context) ([]domain.WithUser, error) {
	if m.ListAllWithUsersFn != nil {
		return m.ListAllWithUsersFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) SumCompletedByUser(ctx context.Context, userID string) (float64, error) {
	if m.SumCompletedByUserFn != nil {
		return m.SumCompletedByUserFn(ctx, userID)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) SumCompleted(ctx context.Context) (float64, error) {
	if m.SumCompletedFn != nil {
		return m.SumCompletedFn(ctx)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) SumCompletedByCountry(ctx context.Context, country string) (float64, error) {
	if m.SumCompletedByCountryFn != nil {
		return m.SumCompletedByCountryFn(ctx, country)
	}
	return 0, ErrNotStubbed
}
