package user

import (
	"context"
	"errors"

	"fund-management-backend/internal/domain/apperr"
	depositDomain "fund-management-backend/internal/domain/deposit"
	sysconfigDomain "fund-management-backend/internal/domain/sysconfig"
	domain "fund-management-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	users    domain.Repository
	deposits depositDomain.Repository
	cfg      sysconfigDomain.Repository
}

func NewUsecase(users domain.Repository, deposits depositDomain.Repository, cfg sysconfigDomain.Repository) *Usecase {
	return &Usecase{users: users, deposits: deposits, cfg: cfg}
}

// WithEligibility is the admin user listing row.
type WithEligibility struct {
	domain.User
	IsEligibleGuarantor bool    `json:"is_eligible_guarantor"`
	TotalDeposits       float64 `json:"total_deposits"`
}

func (u *Usecase) ListAll(ctx context.Context) ([]WithEligibility, error) {
	cfg, err := u.cfg.Get(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]WithEligibility, len(users))
	for i, usr := range users {
		total, err := u.deposits.SumCompletedByUser(ctx, usr.UserID)
		if err != nil {
			return nil, err
		}
		out[i] = WithEligibility{
			User:                usr,
			IsEligibleGuarantor: total >= cfg.MinimumDepositForGuarantor,
			TotalDeposits:       total,
		}
	}
	return out, nil
}

// UpdateRole reassigns a user's role. Only general_admin may call this.
func (u *Usecase) UpdateRole(ctx context.Context, actor *domain.User, targetUserID string, newRole domain.Role) (*domain.User, error) {
	cap, err := domain.CapabilityFor(actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", actor.Role)
	}
	if !cap.CanManageConfig() {
		return nil, apperr.Permissionf("only general admins may assign roles")
	}
	if !newRole.Valid() {
		return nil, apperr.Validationf("invalid role %q", newRole)
	}

	if err := u.users.UpdateRole(ctx, targetUserID, newRole); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, err
	}
	return u.users.GetByUserID(ctx, targetUserID)
}
