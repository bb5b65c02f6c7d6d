package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	approvalDomain "fund-management-backend/internal/domain/approval"
	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type DecideInput struct {
	ApplicationID     string
	Actor             *userDomain.User
	Action            approvalDomain.Action
	Notes             string
	Conditions        string
	RecommendedAmount *float64
}

// Decide runs one reviewer action through the state machine, appends the
// audit row, and stamps the review fields. The application row is locked for
// the duration.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*appDomain.Application, error) {
	if !in.Action.Valid() {
		return nil, apperr.Validationf("invalid action %q", in.Action)
	}
	cap, err := userDomain.CapabilityFor(in.Actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", in.Actor.Role)
	}
	if !cap.CanReview() {
		return nil, apperr.Permissionf("role %s may not review applications", in.Actor.Role)
	}

	var out *appDomain.Application
	err = u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *appDomain.Application) error {
		if a.Status.Terminal() {
			return apperr.InvalidStatef("application is %s and accepts no further decisions", a.Status)
		}

		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}
		limits := userDomain.ApprovalLimits{
			CountryCoordinator: cfg.CountryCoordinatorLimit,
			FundAdmin:          cfg.FundAdminLimit,
		}

		// The amount under decision: a recommended override applies
		// immediately, else any earlier override, else the request.
		amount := a.DisbursableAmount()
		if in.RecommendedAmount != nil {
			amount = *in.RecommendedAmount
		}

		prev := a.Status
		var next appDomain.Status

		switch in.Action {
		case approvalDomain.ActionApprove:
			applicant, err := r.Users.GetByUserID(ctx, a.UserID)
			if err != nil {
				return err
			}
			if cap.CountryScoped() && applicant.Country != in.Actor.Country {
				return apperr.Permissionf("country coordinators may only approve applications from %s", in.Actor.Country)
			}
			// An amount above this reviewer's tier does not refuse the
			// decision: the approval escalates, and the history row
			// records the hand-off.
			tier := userDomain.TierFor(amount, limits)
			if cap.Rank() < tier.Rank() {
				next = appDomain.StatusRequiresHigherApproval
			} else {
				next = appDomain.StatusApproved
			}
		case approvalDomain.ActionReject:
			next = appDomain.StatusRejected
		case approvalDomain.ActionRequestMoreInfo:
			next = appDomain.StatusUnderReview
		case approvalDomain.ActionEscalate:
			next = appDomain.StatusRequiresHigherApproval
		}

		now := time.Now().UTC()
		a.Status = next
		a.RequiresHigherApproval = next == appDomain.StatusRequiresHigherApproval
		a.ReviewedAt = &now
		a.ReviewedBy = &in.Actor.UserID
		if in.Notes != "" {
			a.ReviewNotes = &in.Notes
		}
		if in.Conditions != "" {
			a.Conditions = &in.Conditions
		}
		if in.RecommendedAmount != nil {
			a.ApprovedAmount = in.RecommendedAmount
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		h := &approvalDomain.History{
			HistoryID:      id.NewID32(),
			ApplicationID:  a.ApplicationID,
			ActorID:        in.Actor.UserID,
			ActorRole:      string(in.Actor.Role),
			Action:         in.Action,
			PreviousStatus: string(prev),
			NewStatus:      string(next),
			CreatedAt:      now,
		}
		if in.Notes != "" {
			h.Notes = &in.Notes
		}
		if in.Conditions != "" {
			h.Conditions = &in.Conditions
		}
		h.RecommendedAmount = in.RecommendedAmount
		if err := r.Approvals.Create(ctx, h); err != nil {
			return err
		}

		out = a
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("application not found")
		}
		return nil, err
	}
	return out, nil
}

// CanApprove answers whether the reviewer could land this approval as-is:
// the amount sits within their own limit and, for coordinators, the
// applicant is from their country. Used to annotate the queue; an approve
// over the limit is not refused but escalates (see Decide).
func CanApprove(cap userDomain.Capability, limits userDomain.ApprovalLimits, amount float64, applicantCountry, approverCountry string) (bool, string) {
	limit, unlimited := cap.ApprovalLimit(limits)
	if !unlimited && amount > limit {
		return false, fmt.Sprintf("amount %.2f exceeds your approval limit of %.2f", amount, limit)
	}
	if cap.Role() == userDomain.RoleCountryCoordinator && applicantCountry != approverCountry {
		return false, fmt.Sprintf("country coordinators may only approve applications from %s", approverCountry)
	}
	return true, ""
}

// QueueItem annotates a queued application with whether the requesting
// reviewer could approve it as-is.
type QueueItem struct {
	appDomain.Application
	ApplicantCountry string `json:"applicant_country,omitempty"`
	CanApprove       bool   `json:"can_approve"`
	Restriction      string `json:"restriction_reason,omitempty"`
}

// Queue returns the reviewer's working set, priority-sorted. Coordinators see
// same-country pending/under-review applications within their limit; fund
// admins add the escalated ones within theirs; general admins see everything.
func (u *Usecase) Queue(ctx context.Context, actor *userDomain.User) ([]QueueItem, error) {
	cap, err := userDomain.CapabilityFor(actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", actor.Role)
	}
	if !cap.CanReview() {
		return nil, apperr.Permissionf("role %s may not review applications", actor.Role)
	}

	var out []QueueItem
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}
		limits := userDomain.ApprovalLimits{
			CountryCoordinator: cfg.CountryCoordinatorLimit,
			FundAdmin:          cfg.FundAdminLimit,
		}

		f := appDomain.QueueFilter{
			Statuses: []appDomain.Status{appDomain.StatusPending, appDomain.StatusUnderReview},
		}
		if cap.ReviewsEscalations() {
			f.Statuses = append(f.Statuses, appDomain.StatusRequiresHigherApproval)
		}
		if limit, unlimited := cap.ApprovalLimit(limits); !unlimited {
			f.MaxAmount = &limit
		}
		if cap.CountryScoped() {
			f.Country = &actor.Country
		}

		apps, err := r.Applications.ListQueue(ctx, f)
		if err != nil {
			return err
		}

		out = make([]QueueItem, len(apps))
		for i := range apps {
			item := QueueItem{Application: apps[i]}
			if applicant, err := r.Users.GetByUserID(ctx, apps[i].UserID); err == nil {
				item.ApplicantCountry = applicant.Country
			}
			ok, reason := CanApprove(cap, limits, apps[i].DisbursableAmount(), item.ApplicantCountry, actor.Country)
			item.CanApprove = ok
			item.Restriction = reason
			out[i] = item
		}
		return nil
	})
	return out, err
}

// History returns the append-only audit trail for one application.
func (u *Usecase) History(ctx context.Context, applicationID string) ([]approvalDomain.History, error) {
	var out []approvalDomain.History
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Applications.GetByApplicationID(ctx, applicationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("application not found")
			}
			return err
		}
		var err error
		out, err = r.Approvals.ListByApplication(ctx, applicationID)
		return err
	})
	return out, err
}
