package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/testutil/appmock"
	"fund-management-backend/internal/testutil/configmock"
	"fund-management-backend/internal/testutil/depositmock"
	"fund-management-backend/internal/testutil/guarantormock"
	"fund-management-backend/internal/testutil/uowmock"
	"fund-management-backend/internal/testutil/usermock"
	applicationUC "fund-management-backend/internal/usecase/application"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationHandler() *ApplicationHandler {
	u := &uowmock.UoW{Repos: uow.Repos{
		Users: &usermock.Repo{
			GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
				return &userDomain.User{UserID: userID, Role: userDomain.RoleMember, IsActive: true}, nil
			},
		},
		Deposits: &depositmock.Repo{
			SumCompletedByUserFn: func(ctx context.Context, userID string) (float64, error) { return 600, nil },
		},
		Applications: &appmock.Repo{
			CountByUserFn: func(ctx context.Context, userID string) (int64, error) { return 0, nil },
		},
		Guarantors: &guarantormock.Repo{},
		Config:     &configmock.Repo{},
	}}
	return NewApplicationHandler(applicationUC.NewUsecase(u))
}

func TestCreateApplication_BindsEntityFieldNames(t *testing.T) {
	e := newEchoWithValidator()
	h := applicationHandler()

	// request and response both speak requested_duration_months
	c, rec := memberCtx(e, stdhttp.MethodPost, "/api/finance-applications", mustJSON(map[string]any{
		"amount":                    900.0,
		"purpose":                   "equipment",
		"requested_duration_months": 9,
	}))
	require.NoError(t, h.Create(c))
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	var got struct {
		DurationMonths int    `json:"requested_duration_months"`
		UserID         string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 9, got.DurationMonths)
	assert.Equal(t, "member1", got.UserID)
}

func TestCreateApplication_MissingDurationRejected(t *testing.T) {
	e := newEchoWithValidator()
	h := applicationHandler()

	c, rec := memberCtx(e, stdhttp.MethodPost, "/api/finance-applications", mustJSON(map[string]any{
		"amount":  900.0,
		"purpose": "equipment",
	}))
	require.NoError(t, h.Create(c))
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, containsFieldMsg(resp.Details, "DurationMonths", "is required"))
}
