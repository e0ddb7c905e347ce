// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"schoolku_backend/internals/configs"
	databases "schoolku_backend/internals/databases"
	"schoolku_backend/internals/databases/tenantdb"
	"schoolku_backend/internals/features/users/rbac"
	rbacSvc "schoolku_backend/internals/features/users/rbac/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/logger"
	"schoolku_backend/internals/middlewares"
	authmw "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/route"
)

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.AppEnv,
		ServiceName: "schoolku-backend",
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := databases.Connect(cfg)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}

	if src := configs.GetEnv("MIGRATIONS_URL", "file://internals/databases/migrations"); src != "" {
		if err := databases.Migrate(cfg, src); err != nil {
			zlog.Fatal("migrations failed", zap.Error(err))
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	registry := rbac.NewRegistry()
	if err := rbacSvc.SeedCatalog(db, registry); err != nil {
		zlog.Fatal("role catalog seed failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "SchoolKu API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.JsonFromError(c, err)
		},
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(requestid.New())
	app.Use(middlewares.CorsMiddleware())
	app.Use(middlewares.GlobalRateLimiter())
	app.Use(compress.New())
	app.Use(etag.New())

	route.Setup(app, route.Deps{
		DB:        db,
		Gateway:   tenantdb.New(db, zlog),
		Guard:     rbac.NewGuard(registry),
		Validator: validator.New(),
		JWTSecret: cfg.JWTSecret,
		Blacklist: authmw.NewTokenBlacklist(rdb),
	})

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	_ = rdb.Close()
}
