package disbursement

import (
	"math"
	"time"

	scheduleDomain "fund-management-backend/internal/domain/schedule"
	"fund-management-backend/pkg/id"
)

// AnnualInterestRate is the fixed reducing-balance rate applied to every
// loan.
const AnnualInterestRate = 0.05

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Amortize builds the monthly installment rows for a fixed-rate
// reducing-balance loan. Due dates use a flat 30-day month. The final row's
// principal is forced to the remaining balance so the schedule sums exactly
// to the disbursed principal, absorbing per-row rounding.
func Amortize(applicationID, userID string, principal float64, months int, annualRate float64, disbursedAt time.Time) []*scheduleDomain.Installment {
	monthlyRate := annualRate / 12

	var monthlyPayment float64
	if monthlyRate == 0 {
		monthlyPayment = principal / float64(months)
	} else {
		factor := math.Pow(1+monthlyRate, float64(months))
		monthlyPayment = principal * monthlyRate * factor / (factor - 1)
	}

	rows := make([]*scheduleDomain.Installment, 0, months)
	remaining := principal
	for i := 1; i <= months; i++ {
		interest := round2(remaining * monthlyRate)
		principalPart := round2(monthlyPayment - interest)
		total := round2(monthlyPayment)
		if i == months {
			principalPart = round2(remaining)
			total = round2(principalPart + interest)
		}

		rows = append(rows, &scheduleDomain.Installment{
			ScheduleID:        id.NewID32(),
			ApplicationID:     applicationID,
			UserID:            userID,
			InstallmentNumber: i,
			DueDate:           disbursedAt.AddDate(0, 0, 30*i),
			TotalAmount:       total,
			PrincipalAmount:   principalPart,
			InterestAmount:    interest,
			Status:            scheduleDomain.StatusScheduled,
		})
		remaining = round2(remaining - principalPart)
	}
	return rows
}
