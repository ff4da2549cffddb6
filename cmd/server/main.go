package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"galleria/internal/auth"
	"galleria/internal/cache"
	"galleria/internal/config"
	"galleria/internal/db"
	"galleria/internal/handler"
	"galleria/internal/model"
	"galleria/internal/repository"
	"galleria/internal/router"
	"galleria/internal/seed"
	"galleria/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Artist{},
		&model.Picture{},
		&model.Exhibition{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	cacheClient := cache.New(rdb)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	artistRepo := repository.NewArtistRepository(gormDB)
	pictureRepo := repository.NewPictureRepository(gormDB)

	// Initialize session store and guard
	sessionStore := auth.NewRedisSessionStore(rdb)
	guard := auth.NewGuard(sessionStore)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionStore)
	pictureService := service.NewPictureService(pictureRepo)
	artistService := service.NewArtistService(artistRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	pictureHandler := handler.NewPictureHandler(pictureService)
	artistHandler := handler.NewArtistHandler(artistService, pictureService)
	adminHandler := handler.NewAdminHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		guard,
		authHandler,
		pictureHandler,
		artistHandler,
		adminHandler,
	)

	// Populate baseline data before serving; a seed failure is logged
	// but does not prevent startup, matching a catalog that can run on
	// an already-populated database.
	seeder := seed.New(userRepo, artistRepo, pictureRepo, cfg.AdminUsername, cfg.AdminPassword)
	if err := seeder.Run(context.Background()); err != nil {
		log.Printf("seed warning: %v", err)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
