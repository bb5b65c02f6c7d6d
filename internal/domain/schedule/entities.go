package schedule

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusPartial   Status = "partial"
)

// Installment is one month of an amortized repayment schedule. Rows are
// generated in bulk at disbursement time; repayment processing mutates them
// individually later.
type Installment struct {
	ID                uint64     `gorm:"primaryKey;column:id" json:"-"`
	ScheduleID        string     `gorm:"size:32;uniqueIndex:ux_payment_schedules_schedule_id" json:"id"`
	ApplicationID     string     `gorm:"size:32;index:idx_payment_schedules_application" json:"application_id"`
	UserID            string     `gorm:"size:32;index:idx_payment_schedules_user" json:"user_id"`
	InstallmentNumber int        `json:"installment_number"`
	DueDate           time.Time  `json:"due_date"`
	TotalAmount       float64    `gorm:"type:decimal(18,2)" json:"total_amount"`
	PrincipalAmount   float64    `gorm:"type:decimal(18,2)" json:"principal_amount"`
	InterestAmount    float64    `gorm:"type:decimal(18,2)" json:"interest_amount"`
	Status            Status     `gorm:"size:16;default:'scheduled'" json:"status"`
	PaidDate          *time.Time `json:"paid_date,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Installment) TableName() string { return "payment_schedules" }
