package application

import (
	"context"
	"errors"
	"time"

	appDomain "fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/apperr"
	guarantorDomain "fund-management-backend/internal/domain/guarantor"
	"fund-management-backend/internal/domain/uow"
	userDomain "fund-management-backend/internal/domain/user"
	"fund-management-backend/internal/usecase/priority"
	"fund-management-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateInput struct {
	UserID         string
	Amount         float64
	Purpose        string
	DurationMonths int
	Description    string
	Guarantors     []string
}

// WithGuarantors is an application joined with its guarantor obligations.
type WithGuarantors struct {
	appDomain.Application
	Guarantors []guarantorDomain.Guarantor `json:"guarantors"`
}

// Create validates the request and guarantor eligibility, stamps the priority
// fields, and persists the application together with one pending guarantor
// record per listed backer. All checks run before any write.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*WithGuarantors, error) {
	var out *WithGuarantors

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cfg, err := r.Config.Get(ctx)
		if err != nil {
			return err
		}

		if in.Amount <= 0 {
			return apperr.Validationf("amount must be positive")
		}
		if in.Amount > cfg.MaxLoanAmount {
			return apperr.Validationf("amount %.2f exceeds maximum loan amount %.2f", in.Amount, cfg.MaxLoanAmount)
		}
		if in.Purpose == "" {
			return apperr.Validationf("purpose is required")
		}
		if in.DurationMonths <= 0 {
			return apperr.Validationf("requested duration must be positive")
		}
		if in.DurationMonths > cfg.MaxLoanDurationMonths {
			return apperr.Validationf("duration %d months exceeds maximum %d", in.DurationMonths, cfg.MaxLoanDurationMonths)
		}

		appID := id.NewID32()
		now := time.Now().UTC()

		// Validate every guarantor before writing anything.
		guarantors := make([]*guarantorDomain.Guarantor, 0, len(in.Guarantors))
		for _, guarantorUserID := range in.Guarantors {
			gu, err := r.Users.GetByUserID(ctx, guarantorUserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Validationf("guarantor user not found: %s", guarantorUserID)
				}
				return err
			}
			if !gu.IsActive {
				return apperr.Validationf("guarantor %s is not an active user", gu.FullName)
			}
			total, err := r.Deposits.SumCompletedByUser(ctx, guarantorUserID)
			if err != nil {
				return err
			}
			if total < cfg.MinimumDepositForGuarantor {
				return apperr.Validationf("user %s is not eligible to be a guarantor: minimum deposit required is %.2f",
					gu.FullName, cfg.MinimumDepositForGuarantor)
			}

			guarantors = append(guarantors, &guarantorDomain.Guarantor{
				GuarantorID:      id.NewID32(),
				ApplicationID:    appID,
				GuarantorUserID:  gu.UserID,
				GuarantorName:    gu.FullName,
				GuarantorEmail:   gu.Email,
				Status:           guarantorDomain.StatusPending,
				GuaranteedAmount: in.Amount / float64(len(in.Guarantors)),
				CreatedAt:        now,
			})
		}

		score, priorCount, err := computePriority(ctx, r, cfg.PriorityWeight, in.UserID)
		if err != nil {
			return err
		}

		// Requests beyond the coordinator tier skip straight to the
		// higher-approval track.
		status := appDomain.StatusPending
		higher := false
		if in.Amount > cfg.CountryCoordinatorLimit {
			status = appDomain.StatusRequiresHigherApproval
			higher = true
		}

		a := &appDomain.Application{
			ApplicationID:          appID,
			UserID:                 in.UserID,
			Amount:                 in.Amount,
			Purpose:                in.Purpose,
			DurationMonths:         in.DurationMonths,
			Description:            in.Description,
			Status:                 status,
			RequiresHigherApproval: higher,
			PriorityScore:          score,
			PreviousFinancesCount:  priorCount,
			CreatedAt:              now,
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		if err := r.Guarantors.CreateBatch(ctx, guarantors); err != nil {
			return err
		}

		rows := make([]guarantorDomain.Guarantor, len(guarantors))
		for i, g := range guarantors {
			rows[i] = *g
		}
		out = &WithGuarantors{Application: *a, Guarantors: rows}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func computePriority(ctx context.Context, r uow.Repos, weight float64, userID string) (float64, int64, error) {
	priorCount, err := r.Applications.CountByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return priority.Score(weight, priorCount), priorCount, nil
}

// ListOwn returns the caller's applications, newest first, with guarantors
// attached.
func (u *Usecase) ListOwn(ctx context.Context, userID string) ([]WithGuarantors, error) {
	var out []WithGuarantors
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		apps, err := r.Applications.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		out, err = attachGuarantors(ctx, r, apps)
		return err
	})
	return out, err
}

// AdminRow is the reviewer listing: application, guarantors, and applicant
// identity.
type AdminRow struct {
	WithGuarantors
	ApplicantName    string `json:"applicant_name,omitempty"`
	ApplicantEmail   string `json:"applicant_email,omitempty"`
	ApplicantCountry string `json:"applicant_country,omitempty"`
}

// ListForReviewer returns the priority-sorted application list scoped to the
// reviewer's authority: coordinators see their own country only.
func (u *Usecase) ListForReviewer(ctx context.Context, actor *userDomain.User) ([]AdminRow, error) {
	cap, err := userDomain.CapabilityFor(actor.Role)
	if err != nil {
		return nil, apperr.Permissionf("unknown role %q", actor.Role)
	}
	if !cap.CanReview() {
		return nil, apperr.Permissionf("role %s may not review applications", actor.Role)
	}

	var out []AdminRow
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var apps []appDomain.Application
		var err error
		if cap.CountryScoped() {
			apps, err = r.Applications.ListByCountry(ctx, actor.Country)
		} else {
			apps, err = r.Applications.ListAll(ctx)
		}
		if err != nil {
			return err
		}

		withG, err := attachGuarantors(ctx, r, apps)
		if err != nil {
			return err
		}
		out = make([]AdminRow, len(withG))
		for i := range withG {
			row := AdminRow{WithGuarantors: withG[i]}
			if applicant, err := r.Users.GetByUserID(ctx, withG[i].UserID); err == nil {
				row.ApplicantName = applicant.FullName
				row.ApplicantEmail = applicant.Email
				row.ApplicantCountry = applicant.Country
			}
			out[i] = row
		}
		return nil
	})
	return out, err
}

func attachGuarantors(ctx context.Context, r uow.Repos, apps []appDomain.Application) ([]WithGuarantors, error) {
	out := make([]WithGuarantors, len(apps))
	for i := range apps {
		gs, err := r.Guarantors.ListByApplication(ctx, apps[i].ApplicationID)
		if err != nil {
			return nil, err
		}
		out[i] = WithGuarantors{Application: apps[i], Guarantors: gs}
	}
	return out, nil
}
