package disbursement

import "time"

// Disbursement is created at most once per application; the unique index on
// application_id is the double-payout guard.
type Disbursement struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	DisbursementID  string    `gorm:"size:32;uniqueIndex:ux_disbursements_disbursement_id" json:"id"`
	ApplicationID   string    `gorm:"size:32;uniqueIndex:ux_disbursements_application" json:"application_id"`
	Amount          float64   `gorm:"type:decimal(18,2)" json:"disbursed_amount"`
	ReferenceNumber string    `gorm:"size:32" json:"reference_number"`
	Method          string    `gorm:"size:64" json:"disbursement_method,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	Status          string    `gorm:"size:16;default:'disbursed'" json:"status"`
	DisbursedBy     string    `gorm:"size:32" json:"disbursed_by"`
	DisbursedAt     time.Time `json:"disbursed_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Disbursement) TableName() string { return "disbursements" }
