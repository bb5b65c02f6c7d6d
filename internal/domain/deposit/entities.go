package deposit

import "time"

type Status string

const (
	// StatusCompleted is the only modeled deposit status; deposits are
	// immutable once created.
	StatusCompleted Status = "completed"
)

type Deposit struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	DepositID   string    `gorm:"size:32;uniqueIndex:ux_deposits_deposit_id" json:"id"`
	UserID      string    `gorm:"size:32;index:idx_deposits_user" json:"user_id"`
	Amount      float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Status      Status    `gorm:"size:16;default:'completed'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Deposit) TableName() string { return "deposits" }

// WithUser is the admin listing row: a deposit joined with its owner.
type WithUser struct {
	Deposit
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
