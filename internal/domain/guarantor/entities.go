package guarantor

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Guarantor links one application to one backing user. The record is mutated
// exactly once, by the named guarantor, from pending to accepted or declined.
type Guarantor struct {
	ID               uint64     `gorm:"primaryKey;column:id" json:"-"`
	GuarantorID      string     `gorm:"size:32;uniqueIndex:ux_guarantors_guarantor_id" json:"id"`
	ApplicationID    string     `gorm:"size:32;index:idx_guarantors_application" json:"application_id"`
	GuarantorUserID  string     `gorm:"size:32;index:idx_guarantors_user" json:"guarantor_user_id"`
	GuarantorName    string     `gorm:"size:255" json:"guarantor_name"`
	GuarantorEmail   string     `gorm:"size:255" json:"guarantor_email"`
	Status           Status     `gorm:"size:16;default:'pending'" json:"status"`
	GuaranteedAmount float64    `gorm:"type:decimal(18,2)" json:"guaranteed_amount"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

func (Guarantor) TableName() string { return "guarantors" }

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
