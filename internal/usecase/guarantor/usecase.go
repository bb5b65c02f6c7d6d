package guarantor

import (
	"context"
	"errors"
	"time"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	depositDomain "fund-management-backend/internal/domain/deposit"
	domain "fund-management-backend/internal/domain/guarantor"
	sysconfigDomain "fund-management-backend/internal/domain/sysconfig"
	userDomain "fund-management-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	guarantors domain.Repository
	apps       appDomain.Repository
	users      userDomain.Repository
	deposits   depositDomain.Repository
	cfg        sysconfigDomain.Repository
}

func NewUsecase(
	guarantors domain.Repository,
	apps appDomain.Repository,
	users userDomain.Repository,
	deposits depositDomain.Repository,
	cfg sysconfigDomain.Repository,
) *Usecase {
	return &Usecase{guarantors: guarantors, apps: apps, users: users, deposits: deposits, cfg: cfg}
}

// Respond records the named guarantor's one-shot accept/decline. The record
// must belong to the responder and still be pending; the decision is never
// reversible.
func (u *Usecase) Respond(ctx context.Context, guarantorID, respondingUserID string, decision domain.Status) (*domain.Guarantor, error) {
	if decision != domain.StatusAccepted && decision != domain.StatusDeclined {
		return nil, apperr.Validationf("invalid response %q: must be 'accepted' or 'declined'", decision)
	}

	g, err := u.guarantors.GetByGuarantorID(ctx, guarantorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("guarantor request not found")
		}
		return nil, err
	}
	// A request addressed to someone else is invisible to the caller.
	if g.GuarantorUserID != respondingUserID {
		return nil, apperr.NotFoundf("guarantor request not found")
	}
	if g.Status != domain.StatusPending {
		return nil, apperr.Conflictf("guarantor request already responded to")
	}

	now := time.Now().UTC()
	g.Status = decision
	g.RespondedAt = &now
	if err := u.guarantors.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Readiness reports whether the application's guarantor gate is open.
func (u *Usecase) Readiness(ctx context.Context, applicationID string) (bool, string, error) {
	gs, err := u.guarantors.ListByApplication(ctx, applicationID)
	if err != nil {
		return false, "", err
	}
	ready, reason := domain.Readiness(gs)
	return ready, reason, nil
}

// RequestWithApplication is a guarantor obligation joined with the loan it
// backs, for the guarantor's inbox.
type RequestWithApplication struct {
	domain.Guarantor
	ApplicationDetails *ApplicationDetails `json:"application_details,omitempty"`
}

type ApplicationDetails struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	Purpose        string  `json:"purpose"`
	DurationMonths int     `json:"requested_duration_months"`
	Description    string  `json:"description,omitempty"`
	ApplicantName  string  `json:"applicant_name"`
	ApplicantEmail string  `json:"applicant_email"`
}

// ListForUser returns the caller's guarantor requests, newest first, each
// annotated with the application being backed.
func (u *Usecase) ListForUser(ctx context.Context, userID string) ([]RequestWithApplication, error) {
	gs, err := u.guarantors.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]RequestWithApplication, len(gs))
	for i, g := range gs {
		out[i] = RequestWithApplication{Guarantor: g}
		a, err := u.apps.GetByApplicationID(ctx, g.ApplicationID)
		if err != nil {
			continue
		}
		details := &ApplicationDetails{
			ID:             a.ApplicationID,
			Amount:         a.Amount,
			Purpose:        a.Purpose,
			DurationMonths: a.DurationMonths,
			Description:    a.Description,
			ApplicantName:  "Unknown",
			ApplicantEmail: "Unknown",
		}
		if applicant, err := u.users.GetByUserID(ctx, a.UserID); err == nil {
			details.ApplicantName = applicant.FullName
			details.ApplicantEmail = applicant.Email
		}
		out[i].ApplicationDetails = details
	}
	return out, nil
}

// EligibleUser is a member qualified to guarantee a loan.
type EligibleUser struct {
	UserID        string  `json:"id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Country       string  `json:"country"`
	TotalDeposits float64 `json:"total_deposits"`
}

// Eligible lists active members whose completed deposits meet the configured
// minimum, excluding the requesting user (no self-guarantee).
func (u *Usecase) Eligible(ctx context.Context, excludeUserID string) ([]EligibleUser, error) {
	cfg, err := u.cfg.Get(ctx)
	if err != nil {
		return nil, err
	}
	members, err := u.users.ListActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EligibleUser, 0, len(members))
	for _, m := range members {
		if m.UserID == excludeUserID {
			continue
		}
		total, err := u.deposits.SumCompletedByUser(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if total >= cfg.MinimumDepositForGuarantor {
			out = append(out, EligibleUser{
				UserID:        m.UserID,
				FullName:      m.FullName,
				Email:         m.Email,
				Country:       m.Country,
				TotalDeposits: total,
			})
		}
	}
	return out, nil
}

// ListAll is the admin view of every guarantor relationship, annotated with
// the backed application's amount and purpose.
type AdminRow struct {
	domain.Guarantor
	ApplicationAmount  float64 `json:"application_amount,omitempty"`
	ApplicationPurpose string  `json:"application_purpose,omitempty"`
}

func (u *Usecase) ListAll(ctx context.Context) ([]AdminRow, error) {
	gs, err := u.guarantors.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AdminRow, len(gs))
	for i, g := range gs {
		out[i] = AdminRow{Guarantor: g}
		if a, err := u.apps.GetByApplicationID(ctx, g.ApplicationID); err == nil {
			out[i].ApplicationAmount = a.Amount
			out[i].ApplicationPurpose = a.Purpose
		}
	}
	return out, nil
}
