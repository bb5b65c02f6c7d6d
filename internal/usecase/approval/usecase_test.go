package approval

import (
	"context"
	"testing"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	approvalDomain "fund-management-backend/internal/domain/approval"
	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/testutil/appmock"
	"fund-management-backend/internal/testutil/approvalmock"
	"fund-management-backend/internal/testutil/configmock"
	"fund-management-backend/internal/testutil/usermock"
	"fund-management-backend/internal/testutil/uowmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func coordinator(country string) *userDomain.User {
	return &userDomain.User{UserID: "cc1", Role: userDomain.RoleCountryCoordinator, Country: country, IsActive: true}
}

func fundAdmin() *userDomain.User {
	return &userDomain.User{UserID: "fa1", Role: userDomain.RoleFundAdmin, Country: "Kenya", IsActive: true}
}

func decideFixture(app *appDomain.Application, applicantCountry string) (*uowmock.UoW, *approvalmock.Repo) {
	approvals := &approvalmock.Repo{}
	u := &uowmock.UoW{
		LockedApplication: app,
		Repos: uow.Repos{
			Applications: &appmock.Repo{},
			Approvals:    approvals,
			Config:       &configmock.Repo{},
			Users: &usermock.Repo{
				GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
					return &userDomain.User{UserID: userID, Country: applicantCountry, IsActive: true}, nil
				},
			},
		},
	}
	return u, approvals
}

func TestDecide_CoordinatorApprovesWithinLimit(t *testing.T) {
	app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 800, Status: appDomain.StatusPending}
	u, approvals := decideFixture(app, "Kenya")
	uc := NewUsecase(u)

	out, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         coordinator("Kenya"),
		Action:        approvalDomain.ActionApprove,
		Notes:         "looks good",
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusApproved, out.Status)
	assert.False(t, out.RequiresHigherApproval)
	require.NotNil(t, out.ReviewedAt)
	require.NotNil(t, out.ReviewedBy)
	assert.Equal(t, "cc1", *out.ReviewedBy)

	require.Len(t, approvals.Rows, 1)
	h := approvals.Rows[0]
	assert.Equal(t, approvalDomain.ActionApprove, h.Action)
	assert.Equal(t, string(appDomain.StatusPending), h.PreviousStatus)
	assert.Equal(t, string(appDomain.StatusApproved), h.NewStatus)
}

func TestDecide_ApproveAboveOwnLimitEscalates(t *testing.T) {
	// default coordinator limit is 5000: approving 6000 hands the
	// application to the next tier instead of landing or refusing
	app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 6000, Status: appDomain.StatusPending}
	u, approvals := decideFixture(app, "Kenya")
	uc := NewUsecase(u)

	out, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         coordinator("Kenya"),
		Action:        approvalDomain.ActionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusRequiresHigherApproval, out.Status)
	assert.True(t, out.RequiresHigherApproval)

	require.Len(t, approvals.Rows, 1)
	h := approvals.Rows[0]
	assert.Equal(t, approvalDomain.ActionApprove, h.Action)
	assert.Equal(t, string(appDomain.StatusPending), h.PreviousStatus)
	assert.Equal(t, string(appDomain.StatusRequiresHigherApproval), h.NewStatus)
}

func TestDecide_FundAdminLandsEscalatedApplication(t *testing.T) {
	app := &appDomain.Application{
		ApplicationID:          "a1",
		UserID:                 "m1",
		Amount:                 6000,
		Status:                 appDomain.StatusRequiresHigherApproval,
		RequiresHigherApproval: true,
	}
	u, _ := decideFixture(app, "Kenya")
	uc := NewUsecase(u)

	out, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         fundAdmin(),
		Action:        approvalDomain.ActionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusApproved, out.Status)
	assert.False(t, out.RequiresHigherApproval)
}

func TestDecide_InclusiveLimitBoundary(t *testing.T) {
	// exactly at the coordinator limit still lands within the tier
	app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 5000, Status: appDomain.StatusPending}
	u, _ := decideFixture(app, "Kenya")
	uc := NewUsecase(u)

	out, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         coordinator("Kenya"),
		Action:        approvalDomain.ActionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusApproved, out.Status)
}

func TestDecide_CrossCountryCoordinatorForbidden(t *testing.T) {
	app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 800, Status: appDomain.StatusPending}
	u, _ := decideFixture(app, "Uganda")
	uc := NewUsecase(u)

	_, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         coordinator("Kenya"),
		Action:        approvalDomain.ActionApprove,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}

func TestDecide_RecommendedAmountDrivesAuthorization(t *testing.T) {
	// a 6000 request trimmed to 4000 falls back inside the coordinator tier
	app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 6000, Status: appDomain.StatusRequiresHigherApproval}
	u, _ := decideFixture(app, "Kenya")
	uc := NewUsecase(u)

	rec := 4000.0
	out, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID:     "a1",
		Actor:             coordinator("Kenya"),
		Action:            approvalDomain.ActionApprove,
		RecommendedAmount: &rec,
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusApproved, out.Status)
	require.NotNil(t, out.ApprovedAmount)
	assert.Equal(t, 4000.0, *out.ApprovedAmount)
}

func TestDecide_Reject(t *testing.T) {
	app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 800, Status: appDomain.StatusPending}
	u, approvals := decideFixture(app, "Kenya")
	uc := NewUsecase(u)

	out, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         coordinator("Kenya"),
		Action:        approvalDomain.ActionReject,
		Notes:         "insufficient history",
	})
	require.NoError(t, err)
	assert.Equal(t, appDomain.StatusRejected, out.Status)
	require.Len(t, approvals.Rows, 1)
	assert.Equal(t, string(appDomain.StatusRejected), approvals.Rows[0].NewStatus)
}

func TestDecide_RequestMoreInfoAndEscalate(t *testing.T) {
	for action, want := range map[approvalDomain.Action]appDomain.Status{
		approvalDomain.ActionRequestMoreInfo: appDomain.StatusUnderReview,
		approvalDomain.ActionEscalate:        appDomain.StatusRequiresHigherApproval,
	} {
		app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 800, Status: appDomain.StatusPending}
		u, _ := decideFixture(app, "Kenya")
		uc := NewUsecase(u)

		out, err := uc.Decide(context.Background(), DecideInput{
			ApplicationID: "a1",
			Actor:         coordinator("Kenya"),
			Action:        action,
		})
		require.NoError(t, err)
		assert.Equal(t, want, out.Status)
	}
}

func TestDecide_TerminalApplicationRefused(t *testing.T) {
	for _, status := range []appDomain.Status{appDomain.StatusRejected, appDomain.StatusDisbursed} {
		app := &appDomain.Application{ApplicationID: "a1", UserID: "m1", Amount: 800, Status: status}
		u, _ := decideFixture(app, "Kenya")
		uc := NewUsecase(u)

		_, err := uc.Decide(context.Background(), DecideInput{
			ApplicationID: "a1",
			Actor:         coordinator("Kenya"),
			Action:        approvalDomain.ActionApprove,
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindInvalidState))
	}
}

func TestDecide_MemberCannotReview(t *testing.T) {
	uc := NewUsecase(&uowmock.UoW{})

	_, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "a1",
		Actor:         &userDomain.User{UserID: "m", Role: userDomain.RoleMember},
		Action:        approvalDomain.ActionApprove,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}

func TestDecide_UnknownApplication(t *testing.T) {
	u := &uowmock.UoW{
		LockErr: gorm.ErrRecordNotFound,
	}
	uc := NewUsecase(u)

	_, err := uc.Decide(context.Background(), DecideInput{
		ApplicationID: "missing",
		Actor:         coordinator("Kenya"),
		Action:        approvalDomain.ActionReject,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestQueue_CoordinatorFilter(t *testing.T) {
	var got appDomain.QueueFilter
	apps := &appmock.Repo{
		ListQueueFn: func(ctx context.Context, f appDomain.QueueFilter) ([]appDomain.Application, error) {
			got = f
			return nil, nil
		},
	}
	u := &uowmock.UoW{Repos: uow.Repos{
		Applications: apps,
		Config:       &configmock.Repo{},
		Users:        &usermock.Repo{},
	}}
	uc := NewUsecase(u)

	_, err := uc.Queue(context.Background(), coordinator("Kenya"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []appDomain.Status{appDomain.StatusPending, appDomain.StatusUnderReview}, got.Statuses)
	require.NotNil(t, got.MaxAmount)
	assert.Equal(t, 5000.0, *got.MaxAmount)
	require.NotNil(t, got.Country)
	assert.Equal(t, "Kenya", *got.Country)
}

func TestQueue_GeneralAdminSeesEverything(t *testing.T) {
	var got appDomain.QueueFilter
	apps := &appmock.Repo{
		ListQueueFn: func(ctx context.Context, f appDomain.QueueFilter) ([]appDomain.Application, error) {
			got = f
			return nil, nil
		},
	}
	u := &uowmock.UoW{Repos: uow.Repos{
		Applications: apps,
		Config:       &configmock.Repo{},
		Users:        &usermock.Repo{},
	}}
	uc := NewUsecase(u)

	_, err := uc.Queue(context.Background(), &userDomain.User{UserID: "ga", Role: userDomain.RoleGeneralAdmin})
	require.NoError(t, err)

	assert.Contains(t, got.Statuses, appDomain.StatusRequiresHigherApproval)
	assert.Nil(t, got.MaxAmount)
	assert.Nil(t, got.Country)
}

func TestCanApprove_Boundaries(t *testing.T) {
	limits := userDomain.ApprovalLimits{CountryCoordinator: 1000, FundAdmin: 10000}
	cc, err := userDomain.CapabilityFor(userDomain.RoleCountryCoordinator)
	require.NoError(t, err)
	ga, err := userDomain.CapabilityFor(userDomain.RoleGeneralAdmin)
	require.NoError(t, err)

	ok, _ := CanApprove(cc, limits, 1000, "Kenya", "Kenya")
	assert.True(t, ok, "amount exactly at the limit is approvable")

	ok, reason := CanApprove(cc, limits, 1000.01, "Kenya", "Kenya")
	assert.False(t, ok)
	assert.Contains(t, reason, "exceeds your approval limit")

	ok, _ = CanApprove(ga, limits, 1e9, "Kenya", "Uganda")
	assert.True(t, ok, "general admin is unlimited and country-free")
}
