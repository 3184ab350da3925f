package app

import (
	"context"

	"sara-api/internal/authkey"
	"sara-api/internal/config"
	"sara-api/internal/crud"
	"sara-api/internal/detailnomina"
	"sara-api/internal/messaging/kafka"
	"sara-api/internal/middleware"
	"sara-api/internal/nomina"
	"sara-api/internal/payslip"
	"sara-api/internal/rbac"
	"sara-api/internal/rbac/infra"
	"sara-api/internal/shared/crypto"
	"sara-api/internal/shared/validation"
	"sara-api/internal/staff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func listRegistry(cfg config.Config) *crud.Registry {
	return crud.NewRegistry(
		crud.Model{Name: "staff", Prototype: staff.Staff{}, PageSize: cfg.DefaultPageSize, OrderBy: "id"},
		crud.Model{Name: "nomina", Prototype: nomina.Nomina{}, PageSize: cfg.DefaultPageSize, OrderBy: "date DESC, id"},
		crud.Model{Name: "detailNomina", Prototype: detailnomina.DetailNomina{}, PageSize: cfg.DefaultPageSize, OrderBy: "id_nomina, id_staff"},
	)
}

// newStaffService builds the staff directory, shared by the API and the
// payslip consumer.
func newStaffService(cfg config.Config, gormDB *gorm.DB) (staff.Service, error) {
	encryptor, err := crypto.NewEncryptorFromFile(cfg.KeyFile)
	if err != nil {
		return nil, err
	}
	return staff.NewService(staff.NewRepository(gormDB), encryptor, validation.NewUniqueChecker(gormDB)), nil
}

func newNominaService(cfg config.Config, gormDB *gorm.DB, staffService staff.Service, rdb *redis.Client) nomina.Service {
	return nomina.NewServiceWithDeps(
		nomina.NewRepository(gormDB),
		staffService,
		nomina.Deps{
			Outbox:     kafka.NewOutboxRepository(gormDB),
			Payslips:   payslip.NewRenderer(""),
			PayslipDir: cfg.PayslipDir,
			Cache:      rdb,
		},
	)
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authKeyRepo := authkey.NewRepository(gormDB)
	detailRepo := detailnomina.NewRepository(gormDB)
	crudRepo := crud.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	staffService, err := newStaffService(cfg, gormDB)
	if err != nil {
		return err
	}
	authKeyService := authkey.NewService(authKeyRepo, rdb)
	crudService := crud.NewService(crudRepo, listRegistry(cfg))
	detailService := detailnomina.NewService(detailRepo)
	nominaService := newNominaService(cfg, gormDB, staffService, rdb)

	// --- Handlers ---
	authKeyHandler := authkey.NewHandler(authKeyService)
	crudHandler := crud.NewHandler(crudService)
	detailHandler := detailnomina.NewHandler(detailService)
	nominaHandler := nomina.NewHandler(nominaService)
	rbacHandler := rbac.NewHandler(rbacService)
	staffHandler := staff.NewHandler(staffService)

	// --- Middleware ---
	router.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS*4), cfg.RateLimitBurst*4),
	)
	idempotent := middleware.Idempotency(rdb)

	// --- Routes Registration ---
	api := router.Group("/api",
		middleware.APIKey(authKeyService),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.RateLimitByKey(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	{
		crud.RegisterRoutes(api, crudHandler, rbacService)
		staff.RegisterRoutes(api, staffHandler, crudHandler.ListModel("staff"), rbacService)
		nomina.RegisterRoutes(api, nominaHandler, rbacService, idempotent)
		detailnomina.RegisterRoutes(api, detailHandler, rbacService, idempotent)
		authkey.RegisterRoutes(api, authKeyHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
