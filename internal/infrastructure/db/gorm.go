package db

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/approval"
	"fund-management-backend/internal/domain/deposit"
	"fund-management-backend/internal/domain/disbursement"
	"fund-management-backend/internal/domain/fundpool"
	"fund-management-backend/internal/domain/guarantor"
	"fund-management-backend/internal/domain/schedule"
	"fund-management-backend/internal/domain/sysconfig"
	"fund-management-backend/internal/domain/user"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector is the seam used by tests to inject a mocked driver.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates every table the core persists.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&user.User{},
		&deposit.Deposit{},
		&application.Application{},
		&guarantor.Guarantor{},
		&approval.History{},
		&disbursement.Disbursement{},
		&schedule.Installment{},
		&fundpool.FundPool{},
		&sysconfig.Config{},
	)
}
