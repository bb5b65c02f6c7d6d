package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "fund-management-backend/internal/adapter/http"
	"fund-management-backend/internal/adapter/middleware"
	"fund-management-backend/internal/adapter/repository/mysql"
	"fund-management-backend/internal/config"
	"fund-management-backend/internal/infrastructure/cache"
	"fund-management-backend/internal/infrastructure/db"
	applicationUC "fund-management-backend/internal/usecase/application"
	approvalUC "fund-management-backend/internal/usecase/approval"
	dashboardUC "fund-management-backend/internal/usecase/dashboard"
	depositUC "fund-management-backend/internal/usecase/deposit"
	disbursementUC "fund-management-backend/internal/usecase/disbursement"
	fundpoolUC "fund-management-backend/internal/usecase/fundpool"
	guarantorUC "fund-management-backend/internal/usecase/guarantor"
	priorityUC "fund-management-backend/internal/usecase/priority"
	scheduleUC "fund-management-backend/internal/usecase/schedule"
	sysconfigUC "fund-management-backend/internal/usecase/sysconfig"
	userUC "fund-management-backend/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connection failed", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	// repositories
	users := mysql.NewUserRepository(gdb)
	deposits := mysql.NewDepositRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	guarantors := mysql.NewGuarantorRepository(gdb)
	sysCfg := mysql.NewSysConfigRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	depositSvc := depositUC.NewUsecase(tx)
	applicationSvc := applicationUC.NewUsecase(tx)
	guarantorSvc := guarantorUC.NewUsecase(guarantors, apps, users, deposits, sysCfg)
	approvalSvc := approvalUC.NewUsecase(tx)
	disbursementSvc := disbursementUC.NewUsecase(tx, log)
	fundPoolSvc := fundpoolUC.NewUsecase(tx, log)
	scheduleSvc := scheduleUC.NewUsecase(tx)
	dashboardSvc := dashboardUC.NewUsecase(tx)
	sysconfigSvc := sysconfigUC.NewUsecase(sysCfg)
	userSvc := userUC.NewUsecase(users, deposits, sysCfg)
	prioritySvc := priorityUC.NewUsecase(apps, sysCfg, log)

	// backfill priority fields on rows created before scoring existed
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := prioritySvc.Backfill(ctx)
		cancel()
		if err != nil {
			log.Warn("priority backfill failed", zap.Error(err))
		} else if n > 0 {
			log.Info("priority backfill applied", zap.Int("applications", n))
		}
	}

	// handlers
	h := httpadp.NewHandler()
	depositH := httpadp.NewDepositHandler(depositSvc)
	applicationH := httpadp.NewApplicationHandler(applicationSvc)
	guarantorH := httpadp.NewGuarantorHandler(guarantorSvc)
	scheduleH := httpadp.NewScheduleHandler(scheduleSvc)
	dashboardH := httpadp.NewDashboardHandler(dashboardSvc)
	approvalH := httpadp.NewApprovalHandler(approvalSvc)
	disbursementH := httpadp.NewDisbursementHandler(disbursementSvc)
	adminH := httpadp.NewAdminHandler(fundPoolSvc, sysconfigSvc, userSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	api := e.Group("/api", middleware.Identity(users))
	api.POST("/deposits", depositH.Create, idemp)
	api.GET("/deposits", depositH.ListOwn)
	api.GET("/guarantors/eligible", guarantorH.Eligible)
	api.POST("/finance-applications", applicationH.Create, idemp)
	api.GET("/finance-applications", applicationH.ListOwn)
	api.GET("/guarantor-requests", guarantorH.ListOwn)
	api.PUT("/guarantor-requests/:guarantor_id/respond", guarantorH.Respond, idemp)
	api.GET("/payment-schedules", scheduleH.ListOwn)
	api.GET("/dashboard", dashboardH.Get)

	admin := api.Group("/admin")

	reviewer := admin.Group("", middleware.RequireReviewer())
	reviewer.GET("/approval-queue", approvalH.Queue)
	reviewer.PUT("/applications/:application_id/approve", approvalH.Decide, idemp)
	reviewer.GET("/applications/:application_id/history", approvalH.History)
	reviewer.GET("/applications", applicationH.ListForReviewer)

	disburser := admin.Group("", middleware.RequireDisburser())
	disburser.GET("/ready-for-disbursement", disbursementH.Ready)
	disburser.POST("/applications/:application_id/disburse", disbursementH.Disburse, idemp)
	disburser.GET("/disbursements", disbursementH.ListAll)
	disburser.GET("/deposits", depositH.ListAll)
	disburser.GET("/guarantor-requests", guarantorH.ListAll)
	disburser.GET("/fund-pool", adminH.FundPool)
	disburser.GET("/users", adminH.ListUsers)

	general := admin.Group("", middleware.RequireGeneralAdmin())
	general.POST("/fund-pool/recalculate", adminH.RecalculateFundPool, idemp)
	general.GET("/system-config", adminH.SystemConfig)
	general.PUT("/system-config", adminH.UpdateSystemConfig, idemp)
	general.PUT("/users/role", adminH.UpdateUserRole, idemp)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
