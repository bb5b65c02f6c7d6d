package sysconfig

import "time"

// Defaults used when the singleton is lazily created on first read.
const (
	DefaultMinimumDepositForGuarantor = 500.0
	DefaultPriorityWeight             = 100.0
	DefaultMaxLoanAmount              = 100000.0
	DefaultMaxLoanDurationMonths      = 60
	DefaultCountryCoordinatorLimit    = 5000.0
	DefaultFundAdminLimit             = 50000.0
)

// Config is the singleton of tunable business thresholds. Mutable only by
// general_admin.
type Config struct {
	ID                         uint64    `gorm:"primaryKey;column:id" json:"-"`
	MinimumDepositForGuarantor float64   `gorm:"type:decimal(18,2)" json:"minimum_deposit_for_guarantor"`
	PriorityWeight             float64   `json:"priority_weight"`
	MaxLoanAmount              float64   `gorm:"type:decimal(18,2)" json:"max_loan_amount"`
	MaxLoanDurationMonths      int       `json:"max_loan_duration_months"`
	CountryCoordinatorLimit    float64   `gorm:"type:decimal(18,2)" json:"country_coordinator_limit"`
	FundAdminLimit             float64   `gorm:"type:decimal(18,2)" json:"fund_admin_limit"`
	UpdatedAt                  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedBy                  string    `gorm:"size:32" json:"updated_by,omitempty"`
}

func (Config) TableName() string { return "system_config" }

func DefaultConfig() *Config {
	return &Config{
		MinimumDepositForGuarantor: DefaultMinimumDepositForGuarantor,
		PriorityWeight:             DefaultPriorityWeight,
		MaxLoanAmount:              DefaultMaxLoanAmount,
		MaxLoanDurationMonths:      DefaultMaxLoanDurationMonths,
		CountryCoordinatorLimit:    DefaultCountryCoordinatorLimit,
		FundAdminLimit:             DefaultFundAdminLimit,
	}
}
