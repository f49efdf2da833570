package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"booktracker/database"
	"booktracker/internal/config"
	"booktracker/internal/http-api/handler"
	"booktracker/internal/http-api/middleware"
	"booktracker/internal/http-api/repository"
	"booktracker/internal/http-api/service"
	"booktracker/internal/passwords"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Common-password list: a configured path that cannot be read is fatal,
	// so a broken deployment never silently runs without the check.
	var commonList *passwords.CommonList
	if cfg.CommonPasswordsPath != "" {
		commonList, err = passwords.LoadCommonList(cfg.CommonPasswordsPath)
		if err != nil {
			log.Fatalf("could not load common-password list: %v", err)
		}
		logger.Info("loaded common-password list", "entries", commonList.Len())
	} else {
		logger.Warn("common-password check disabled by configuration")
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	sessionRepo, err := repository.NewSessionRedisRepo(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("could not connect to session store: %v", err)
	}

	loc, err := time.LoadLocation(cfg.LastSeenTimezone)
	if err != nil {
		log.Fatalf("invalid last-seen timezone: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, commonList, cfg.AllowedEmailDomains)
	sessionService := service.NewSessionService(sessionRepo, userRepo, cfg.SessionSecret, cfg.SessionTTL, loc, logger)
	bookService := service.NewBookService(bookRepo)
	adminService := service.NewAdminService(userRepo, bookRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, sessionService, cfg.SessionTTL, logger)
	bookHandler := handler.NewBookHandler(bookService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.SessionAuth(sessionService))

	api := r.Group("/api")
	authHandler.RegisterRoutes(api.Group("/auth"))
	bookHandler.RegisterRoutes(api.Group("/books", middleware.RequireAuth()))
	adminHandler.RegisterRoutes(api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin()))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
