package app

import (
	"sara-api/internal/authkey"
	"sara-api/internal/config"
	"sara-api/internal/detailnomina"
	"sara-api/internal/messaging/kafka"
	"sara-api/internal/nomina"
	"sara-api/internal/rbac"
	"sara-api/internal/shared/connection"
	"sara-api/internal/staff"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	connectGORM  = connection.ConnectGORMWithRetry
	connectRedis = connection.ConnectRedisWithRetry
)

// BuildApp connects the infrastructure and mounts every module on router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connectGORM(cfg.DB(), cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.AutoMigrate {
		if err := migrate(gormDB); err != nil {
			closeDB(gormDB)
			return nil, err
		}
	}

	redisClient, err := connectRedis(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		closeDB(gormDB)
		return nil, err
	}
	logger.Info("redis connection established")

	// 2. Register Modules & Routes
	if err := registerModules(router, cfg, gormDB, redisClient); err != nil {
		_ = redisClient.Close()
		closeDB(gormDB)
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		closeDB(gormDB)
	}
	return cleanup, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&staff.Staff{},
		&nomina.Nomina{},
		&detailnomina.DetailNomina{},
		&authkey.AuthKey{},
		&rbac.RolePermission{},
		&kafka.OutboxEvent{},
	)
}
