package user

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email     string    `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Country   string    `gorm:"size:64;index:idx_users_country" json:"country"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	Role      Role      `gorm:"size:32;default:'member'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}
