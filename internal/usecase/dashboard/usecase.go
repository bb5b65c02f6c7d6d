// Package dashboard builds the per-role read projections. Nothing here
// mutates state; every number is derived from the store on demand.
package dashboard

import (
	"context"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	depositDomain "fund-management-backend/internal/domain/deposit"
	guarantorDomain "fund-management-backend/internal/domain/guarantor"
	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

var reviewStatuses = []appDomain.Status{appDomain.StatusPending, appDomain.StatusUnderReview}

// For dispatches on the caller's role.
func (u *Usecase) For(ctx context.Context, actor *userDomain.User) (any, error) {
	cap, err := userDomain.CapabilityFor(actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", actor.Role)
	}

	switch cap.Role() {
	case userDomain.RoleMember:
		return u.member(ctx, actor)
	case userDomain.RoleCountryCoordinator:
		return u.countryCoordinator(ctx, actor)
	case userDomain.RoleFundAdmin:
		return u.fundAdmin(ctx)
	default:
		return u.generalAdmin(ctx)
	}
}

type MemberDashboard struct {
	Role                       string                   `json:"role"`
	TotalDeposits              float64                  `json:"total_deposits"`
	TotalApplications          int64                    `json:"total_applications"`
	PendingRepayments          float64                  `json:"pending_repayments"`
	IsEligibleGuarantor        bool                     `json:"is_eligible_guarantor"`
	MinimumDepositForGuarantor float64                  `json:"minimum_deposit_for_guarantor"`
	PendingGuarantorRequests   int64                    `json:"pending_guarantor_requests"`
	RecentDeposits             []depositDomain.Deposit  `json:"recent_deposits"`
	RecentApplications         []appDomain.Application  `json:"recent_applications"`
}

func (u *Usecase) member(ctx context.Context, actor *userDomain.User) (*MemberDashboard, error) {
	var out *MemberDashboard
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}
		totalDeposits, err := r.Deposits.SumCompletedByUser(ctx, actor.UserID)
		if err != nil {
			return err
		}
		totalApps, err := r.Applications.CountByUser(ctx, actor.UserID)
		if err != nil {
			return err
		}
		pendingRepay, err := r.Schedules.SumPendingByUser(ctx, actor.UserID)
		if err != nil {
			return err
		}
		pendingRequests, err := r.Guarantors.CountPendingByUser(ctx, actor.UserID)
		if err != nil {
			return err
		}
		recentDeposits, err := r.Deposits.ListRecentByUser(ctx, actor.UserID, 3)
		if err != nil {
			return err
		}
		recentApps, err := r.Applications.ListRecentByUser(ctx, actor.UserID, 3)
		if err != nil {
			return err
		}

		out = &MemberDashboard{
			Role:                       string(userDomain.RoleMember),
			TotalDeposits:              totalDeposits,
			TotalApplications:          totalApps,
			PendingRepayments:          pendingRepay,
			IsEligibleGuarantor:        totalDeposits >= cfg.MinimumDepositForGuarantor,
			MinimumDepositForGuarantor: cfg.MinimumDepositForGuarantor,
			PendingGuarantorRequests:   pendingRequests,
			RecentDeposits:             recentDeposits,
			RecentApplications:         recentApps,
		}
		return nil
	})
	return out, err
}

type CoordinatorDashboard struct {
	Role                   string                  `json:"role"`
	Country                string                  `json:"country"`
	CountryMembers         int64                   `json:"country_members"`
	PendingApplications    int64                   `json:"pending_applications"`
	TotalDepositsInCountry float64                 `json:"total_deposits_in_country"`
	RecentApplications     []appDomain.Application `json:"recent_applications"`
}

func (u *Usecase) countryCoordinator(ctx context.Context, actor *userDomain.User) (*CoordinatorDashboard, error) {
	var out *CoordinatorDashboard
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		members, err := r.Users.CountByCountryRole(ctx, actor.Country, userDomain.RoleMember)
		if err != nil {
			return err
		}
		pending, err := r.Applications.CountByCountryStatus(ctx, actor.Country, []appDomain.Status{appDomain.StatusPending})
		if err != nil {
			return err
		}
		deposits, err := r.Deposits.SumCompletedByCountry(ctx, actor.Country)
		if err != nil {
			return err
		}
		recent, err := r.Applications.ListQueueLimit(ctx, appDomain.QueueFilter{
			Statuses: reviewStatuses,
			Country:  &actor.Country,
		}, 5)
		if err != nil {
			return err
		}

		out = &CoordinatorDashboard{
			Role:                   string(userDomain.RoleCountryCoordinator),
			Country:                actor.Country,
			CountryMembers:         members,
			PendingApplications:    pending,
			TotalDepositsInCountry: deposits,
			RecentApplications:     recent,
		}
		return nil
	})
	return out, err
}

type FundAdminDashboard struct {
	Role                     string                  `json:"role"`
	TotalMembers             int64                   `json:"total_members"`
	TotalApplications        int64                   `json:"total_applications"`
	ApprovedApplications     int64                   `json:"approved_applications"`
	TotalFundValue           float64                 `json:"total_fund_value"`
	DisbursedAmount          float64                 `json:"disbursed_amount"`
	HighPriorityApplications []appDomain.Application `json:"high_priority_applications"`
}

func (u *Usecase) fundAdmin(ctx context.Context) (*FundAdminDashboard, error) {
	var out *FundAdminDashboard
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		totalApps, err := r.Applications.CountAll(ctx)
		if err != nil {
			return err
		}
		approved, err := r.Applications.CountByStatus(ctx, appDomain.StatusApproved)
		if err != nil {
			return err
		}
		fundValue, err := r.Deposits.SumCompleted(ctx)
		if err != nil {
			return err
		}
		disbursed, err := r.Disbursements.SumAll(ctx)
		if err != nil {
			return err
		}
		highPriority, err := r.Applications.ListQueueLimit(ctx, appDomain.QueueFilter{Statuses: reviewStatuses}, 10)
		if err != nil {
			return err
		}
		var members int64
		dist, err := r.Users.RoleDistribution(ctx)
		if err != nil {
			return err
		}
		for _, rc := range dist {
			if rc.Role == string(userDomain.RoleMember) {
				members = rc.Count
			}
		}

		out = &FundAdminDashboard{
			Role:                     string(userDomain.RoleFundAdmin),
			TotalMembers:             members,
			TotalApplications:        totalApps,
			ApprovedApplications:     approved,
			TotalFundValue:           fundValue,
			DisbursedAmount:          disbursed,
			HighPriorityApplications: highPriority,
		}
		return nil
	})
	return out, err
}

type GeneralAdminDashboard struct {
	Role                string                       `json:"role"`
	TotalUsers          int64                        `json:"total_users"`
	RoleDistribution    []userDomain.RoleCount       `json:"role_distribution"`
	CountryDistribution []userDomain.CountryCount    `json:"country_distribution"`
	TotalDeposits       float64                      `json:"total_deposits"`
	ApplicationStats    []appDomain.StatusStat       `json:"application_stats"`
	PriorityStats       *appDomain.PriorityStats     `json:"priority_stats"`
	GuarantorStats      []guarantorDomain.StatusCount `json:"guarantor_stats"`
	RecentApplications  []appDomain.Application      `json:"recent_applications"`
}

func (u *Usecase) generalAdmin(ctx context.Context) (*GeneralAdminDashboard, error) {
	var out *GeneralAdminDashboard
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		totalUsers, err := r.Users.CountAll(ctx)
		if err != nil {
			return err
		}
		roles, err := r.Users.RoleDistribution(ctx)
		if err != nil {
			return err
		}
		countries, err := r.Users.CountryDistribution(ctx, 10)
		if err != nil {
			return err
		}
		deposits, err := r.Deposits.SumCompleted(ctx)
		if err != nil {
			return err
		}
		appStats, err := r.Applications.StatusStats(ctx)
		if err != nil {
			return err
		}
		prioStats, err := r.Applications.PriorityStats(ctx)
		if err != nil {
			return err
		}
		guarantorStats, err := r.Guarantors.StatusDistribution(ctx)
		if err != nil {
			return err
		}
		recent, err := r.Applications.ListQueueLimit(ctx, appDomain.QueueFilter{
			Statuses: []appDomain.Status{
				appDomain.StatusPending, appDomain.StatusUnderReview,
				appDomain.StatusRequiresHigherApproval, appDomain.StatusApproved,
				appDomain.StatusRejected, appDomain.StatusDisbursed,
			},
		}, 5)
		if err != nil {
			return err
		}

		out = &GeneralAdminDashboard{
			Role:                string(userDomain.RoleGeneralAdmin),
			TotalUsers:          totalUsers,
			RoleDistribution:    roles,
			CountryDistribution: countries,
			TotalDeposits:       deposits,
			ApplicationStats:    appStats,
			PriorityStats:       prioStats,
			GuarantorStats:      guarantorStats,
			RecentApplications:  recent,
		}
		return nil
	})
	return out, err
}
