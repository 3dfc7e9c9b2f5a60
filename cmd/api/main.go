package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "cap-core-backend/internal/adapter/http"
	idemp "cap-core-backend/internal/adapter/middleware"
	"cap-core-backend/internal/adapter/repository/kv"
	"cap-core-backend/internal/adapter/repository/mysql"
	"cap-core-backend/internal/config"
	"cap-core-backend/internal/infrastructure/cache"
	"cap-core-backend/internal/infrastructure/db"
	"cap-core-backend/internal/usecase/admin"
	"cap-core-backend/internal/usecase/collection"
	"cap-core-backend/internal/usecase/decision"
	"cap-core-backend/internal/usecase/members"
	"cap-core-backend/internal/usecase/simulation"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&mysql.MemberRecord{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	ledger := mysql.NewMemberRepository(gdb)
	refdataStore := kv.NewRefdataStore(rdb)

	simUC := simulation.NewUsecase(ledger, refdataStore)
	decUC := decision.NewUsecase(ledger)
	colUC := collection.NewUsecase(ledger)
	memUC := members.NewUsecase(ledger)
	admUC := admin.NewUsecase(refdataStore)

	h := httpadp.NewHandler()
	simH := httpadp.NewSimulationHandler(simUC)
	decH := httpadp.NewDecisionHandler(decUC)
	colH := httpadp.NewCollectionHandler(colUC)
	memH := httpadp.NewMemberHandler(memUC)
	admH := httpadp.NewAdminHandler(admUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	// Simulation has no side effects; no idempotency guard needed.
	e.POST("/loans/simulate", simH.Simulate)

	// Money-moving routes replay safely behind the idempotency guard.
	guarded := e.Group("", idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	guarded.POST("/members/:member_id/loans", simH.SubmitRequest)
	guarded.POST("/members/:member_id/loans/:loan_id/decision", decH.Decide)
	guarded.POST("/members/:member_id/loans/:loan_id/collections", colH.Collect)

	e.GET("/members/:member_id", memH.GetMember)
	e.GET("/members/:member_id/loans/:loan_id", memH.GetLoan)

	e.GET("/admin/rates", admH.GetRates)
	e.PUT("/admin/rates", admH.PutRates)
	e.GET("/admin/config", admH.GetConfig)
	e.PUT("/admin/config", admH.PutConfig)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
