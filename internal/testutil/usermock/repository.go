// Package usermock is a function-backed mock of user.Repository.
package usermock

import (
	"context"
	"errors"

	domain "fund-management-backend/internal/domain/user"
)

var ErrNotStubbed = errors.New("usermock: method not stubbed")

type Repo struct {
	CreateFn               func(ctx context.Context, u *domain.User) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*domain.User, error)
	ListAllFn              func(ctx context.Context) ([]domain.User, error)
	ListActiveMembersFn    func(ctx context.Context) ([]domain.User, error)
	ListUserIDsByCountryFn func(ctx context.Context, country string) ([]string, error)
	UpdateRoleFn           func(ctx context.Context, userID string, role domain.Role) error
	CountAllFn             func(ctx context.Context) (int64, error)
	CountByCountryRoleFn   func(ctx context.Context, country string, role domain.Role) (int64, error)
	RoleDistributionFn     func(ctx context.Context) ([]domain.RoleCount, error)
	CountryDistributionFn  func(ctx context.Context, limit int) ([]domain.CountryCount, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.User, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListActiveMembers(ctx context.Context) ([]domain.User, error) {
	if m.ListActiveMembersFn != nil {
		return m.ListActiveMembersFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) ListUserIDsByCountry(ctx context.Context, country string) ([]string, error) {
	if m.ListUserIDsByCountryFn != nil {
		return m.ListUserIDsByCountryFn(ctx, country)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	if m.UpdateRoleFn != nil {
		return m.UpdateRoleFn(ctx, userID, role)
	}
	return nil
}

func (m *Repo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFn != nil {
		return m.CountAllFn(ctx)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) CountByCountryRole(ctx context.Context, country string, role domain.Role) (int64, error) {
	if m.CountByCountryRoleFn != nil {
		return m.CountByCountryRoleFn(ctx, country, role)
	}
	return 0, ErrNotStubbed
}

func (m *Repo) RoleDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	if m.RoleDistributionFn != nil {
		return m.RoleDistributionFn(ctx)
	}
	return nil, ErrNotStubbed
}

func (m *Repo) CountryDistribution(ctx context.Context, limit int) ([]domain.CountryCount, error) {
	if m.CountryDistributionFn != nil {
		return m.CountryDistributionFn(ctx, limit)
	}
	return nil, ErrNotStubbed
}
