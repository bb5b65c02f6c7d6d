package mysql

import (
	"testing"
	"time"

	appDomain "fund-management-backend/internal/domain/application"
	approvalDomain "fund-management-backend/internal/domain/approval"
	depositDomain "fund-management-backend/internal/domain/deposit"
	disbDomain "fund-management-backend/internal/domain/disbursement"
	fundpoolDomain "fund-management-backend/internal/domain/fundpool"
	guarantorDomain "fund-management-backend/internal/domain/guarantor"
	scheduleDomain "fund-management-backend/internal/domain/schedule"
	sysconfigDomain "fund-management-backend/internal/domain/sysconfig"
	userDomain "fund-management-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&depositDomain.Deposit{},
		&appDomain.Application{},
		&guarantorDomain.Guarantor{},
		&approvalDomain.History{},
		&disbDomain.Disbursement{},
		&scheduleDomain.Installment{},
		&fundpoolDomain.FundPool{},
		&sysconfigDomain.Config{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userID, country string) {
	t.Helper()
	u := &userDomain.User{
		UserID:   userID,
		Email:    userID + "@example.com",
		FullName: "User " + userID,
		Country:  country,
		Role:     userDomain.RoleMember,
		IsActive: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func seedApplication(t *testing.T, db *gorm.DB, applicationID, userID string, amount, priority float64, status appDomain.Status, createdAt time.Time) {
	t.Helper()
	a := &appDomain.Application{
		ApplicationID:  applicationID,
		UserID:         userID,
		Amount:         amount,
		Purpose:        "test",
		DurationMonths: 6,
		Status:         status,
		PriorityScore:  priority,
		CreatedAt:      createdAt,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
}
