package approval

import "time"

type Action string

const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionRequestMoreInfo Action = "request_more_info"
	ActionEscalate        Action = "escalate"
)

func (a Action) Valid() bool {
	switch a {
	case ActionApprove, ActionReject, ActionRequestMoreInfo, ActionEscalate:
		return true
	}
	return false
}

// History is the append-only audit log: one row per approval decision, never
// mutated or deleted.
type History struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"-"`
	HistoryID         string    `gorm:"size:32;uniqueIndex:ux_approval_history_id" json:"id"`
	ApplicationID     string    `gorm:"size:32;index:idx_approval_history_application" json:"application_id"`
	ActorID           string    `gorm:"size:32" json:"actor_id"`
	ActorRole         string    `gorm:"size:32" json:"actor_role"`
	Action            Action    `gorm:"size:32" json:"action"`
	PreviousStatus    string    `gorm:"size:32" json:"previous_status"`
	NewStatus         string    `gorm:"size:32" json:"new_status"`
	Notes             *string   `gorm:"type:text" json:"notes,omitempty"`
	Conditions        *string   `gorm:"type:text" json:"conditions,omitempty"`
	RecommendedAmount *float64  `gorm:"type:decimal(18,2)" json:"recommended_amount,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (History) TableName() string { return "approval_history" }
