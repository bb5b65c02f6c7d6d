package fundpool

import "time"

// FundPool is the singleton ledger of the system-wide cash position.
// Derived fields follow:
//
//	available_balance = total_deposits + total_repaid - total_disbursed
//	total_receivables = total_disbursed - total_repaid
type FundPool struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"-"`
	TotalDeposits    float64   `gorm:"type:decimal(18,2);default:0" json:"total_deposits"`
	TotalDisbursed   float64   `gorm:"type:decimal(18,2);default:0" json:"total_disbursed"`
	TotalRepaid      float64   `gorm:"type:decimal(18,2);default:0" json:"total_repaid"`
	AvailableBalance float64   `gorm:"type:decimal(18,2);default:0" json:"available_balance"`
	TotalReceivables float64   `gorm:"type:decimal(18,2);default:0" json:"total_receivables"`
	LastUpdated      time.Time `json:"last_updated"`
	UpdatedBy        string    `gorm:"size:32" json:"updated_by,omitempty"`
}

func (FundPool) TableName() string { return "fund_pool" }

// Recompute refreshes the derived fields from the raw totals.
func (p *FundPool) Recompute() {
	p.AvailableBalance = p.TotalDeposits + p.TotalRepaid - p.TotalDisbursed
	p.TotalReceivables = p.TotalDisbursed - p.TotalRepaid
}

// Delta is one incremental ledger movement. Zero-valued fields leave their
// totals untouched.
type Delta struct {
	Deposits      float64
	Disbursements float64
	Repayments    float64
}
