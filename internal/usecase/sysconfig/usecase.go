package sysconfig

import (
	"context"
	"time"

	"fund-management-backend/internal/domain/apperr"
	domain "fund-management-backend/internal/domain/sysconfig"
	userDomain "fund-management-backend/internal/domain/user"
)

type Usecase struct{ cfg domain.Repository }

func NewUsecase(cfg domain.Repository) *Usecase { return &Usecase{cfg: cfg} }

func (u *Usecase) Get(ctx context.Context) (*domain.Config, error) {
	return u.cfg.Get(ctx)
}

type UpdateInput struct {
	MinimumDepositForGuarantor float64
	PriorityWeight             float64
	MaxLoanAmount              float64
	MaxLoanDurationMonths      int
	CountryCoordinatorLimit    float64
	FundAdminLimit             float64
}

// Update replaces the six tunables. Only general_admin may call this.
func (u *Usecase) Update(ctx context.Context, actor *userDomain.User, in UpdateInput) (*domain.Config, error) {
	cap, err := userDomain.CapabilityFor(actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", actor.Role)
	}
	if !cap.CanManageConfig() {
		return nil, apperr.Permissionf("only general admins may change system configuration")
	}

	if in.MinimumDepositForGuarantor <= 0 || in.PriorityWeight <= 0 ||
		in.MaxLoanAmount <= 0 || in.MaxLoanDurationMonths <= 0 ||
		in.CountryCoordinatorLimit <= 0 || in.FundAdminLimit <= 0 {
		return nil, apperr.Validationf("all configuration values must be positive")
	}
	if in.CountryCoordinatorLimit > in.FundAdminLimit {
		return nil, apperr.Validationf("country coordinator limit %.2f may not exceed fund admin limit %.2f",
			in.CountryCoordinatorLimit, in.FundAdminLimit)
	}

	cfg, err := u.cfg.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.MinimumDepositForGuarantor = in.MinimumDepositForGuarantor
	cfg.PriorityWeight = in.PriorityWeight
	cfg.MaxLoanAmount = in.MaxLoanAmount
	cfg.MaxLoanDurationMonths = in.MaxLoanDurationMonths
	cfg.CountryCoordinatorLimit = in.CountryCoordinatorLimit
	cfg.FundAdminLimit = in.FundAdminLimit
	cfg.UpdatedAt = time.Now().UTC()
	cfg.UpdatedBy = actor.UserID

	if err := u.cfg.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
