package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	ListActiveMembers(ctx context.Context) ([]User, error)
	ListUserIDsByCountry(ctx context.Context, country string) ([]string, error)
	UpdateRole(ctx context.Context, userID string, role Role) error
	CountAll(ctx context.Context) (int64, error)
	CountByCountryRole(ctx context.Context, country string, role Role) (int64, error)
	RoleDistribution(ctx context.Context) ([]RoleCount, error)
	CountryDistribution(ctx context.Context, limit int) ([]CountryCount, error)
}
