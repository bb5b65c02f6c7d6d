package application

import "time"

type Status string

const (
	StatusPending                Status = "pending"
	StatusUnderReview            Status = "under_review"
	StatusRequiresHigherApproval Status = "requires_higher_approval"
	StatusApproved               Status = "approved"
	StatusRejected               Status = "rejected"
	StatusDisbursed              Status = "disbursed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusRequiresHigherApproval,
		StatusApproved, StatusRejected, StatusDisbursed:
		return true
	}
	return false
}

// Terminal statuses accept no further workflow decisions.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusDisbursed
}

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"id"`
	UserID        string `gorm:"size:32;index:idx_applications_user" json:"user_id"`
	// Amount is immutable after creation; ApprovedAmount, once set,
	// overrides it for disbursement.
	Amount                 float64    `gorm:"type:decimal(18,2)" json:"amount"`
	Purpose                string     `gorm:"type:text" json:"purpose"`
	DurationMonths         int        `gorm:"column:requested_duration_months" json:"requested_duration_months"`
	Description            string     `gorm:"type:text" json:"description,omitempty"`
	Status                 Status     `gorm:"size:32;index:idx_applications_status;default:'pending'" json:"status"`
	RequiresHigherApproval bool       `gorm:"default:false" json:"requires_higher_approval"`
	PriorityScore          float64    `gorm:"default:0" json:"priority_score"`
	PreviousFinancesCount  int64      `gorm:"default:0" json:"previous_finances_count"`
	ApprovedAmount         *float64   `gorm:"type:decimal(18,2)" json:"approved_amount,omitempty"`
	Conditions             *string    `gorm:"type:text" json:"conditions,omitempty"`
	ReviewNotes            *string    `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewedAt             *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy             *string    `gorm:"size:32" json:"reviewed_by,omitempty"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (Application) TableName() string { return "finance_applications" }

// DisbursableAmount is the authoritative payout amount: the reviewer's
// approved override when present, otherwise the requested amount.
func (a *Application) DisbursableAmount() float64 {
	if a.ApprovedAmount != nil {
		return *a.ApprovedAmount
	}
	return a.Amount
}

type StatusStat struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type PriorityStats struct {
	Avg float64 `json:"avg_priority"`
	Max float64 `json:"max_priority"`
	Min float64 `json:"min_priority"`
}
