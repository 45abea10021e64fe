package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealerdrive-api/internal/config"
	"dealerdrive-api/internal/handler"
	"dealerdrive-api/internal/middleware"
	"dealerdrive-api/internal/repository"
	"dealerdrive-api/internal/router"
	"dealerdrive-api/internal/service"

	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting DealerDrive API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize repositories based on config
	var carRepo repository.CarRepository
	var enquiryRepo repository.EnquiryRepository

	switch cfg.Store.Backend {
	case "memory":
		carRepo = repository.NewMemoryCarRepository()
		enquiryRepo = repository.NewMemoryEnquiryRepository()
		log.Println("In-memory repositories initialized (data is not durable)")
	case "sqlite":
		db, err := repository.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		defer db.Close()
		carRepo = repository.NewSQLCarRepository(db)
		enquiryRepo = repository.NewSQLEnquiryRepository(db)
		log.Println("SQLite repositories initialized")
	case "mysql":
		db, err := repository.OpenMySQL(cfg.Store.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to initialize MySQL: %v", err)
		}
		defer db.Close()
		carRepo = repository.NewSQLCarRepository(db)
		enquiryRepo = repository.NewSQLEnquiryRepository(db)
		log.Println("MySQL repositories initialized")
	default: // json
		var err error
		carRepo, err = repository.NewFileCarRepository(cfg.Store.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize car store: %v", err)
		}
		enquiryRepo, err = repository.NewFileEnquiryRepository(cfg.Store.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize enquiry store: %v", err)
		}
		log.Printf("JSON file repositories initialized in %s", cfg.Store.DataDir)
	}

	// Initialize session store
	var sessionStore service.SessionStore
	if cfg.Session.Backend == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddress(),
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Printf("Warning: Redis connection failed, falling back to in-memory sessions: %v", err)
		} else {
			sessionStore = service.NewRedisSessionStore(redisClient)
			log.Println("Redis session store initialized")
		}
	}
	if sessionStore == nil {
		memStore := service.NewMemorySessionStore()
		defer memStore.Close()
		sessionStore = memStore
	}

	if cfg.Admin.Password == "" {
		log.Println("Warning: ADMIN_PASSWORD not set, admin login is disabled")
	}
	sessions := service.NewSessionService(
		service.EnvCredentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
		sessionStore,
		cfg.Session.TTL,
	)

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version)
	carHandler := handler.NewCarHandler(carRepo)
	enquiryHandler := handler.NewEnquiryHandler(enquiryRepo)
	authHandler := handler.NewAuthHandler(sessions)
	adminHandler := handler.NewAdminHandler(carRepo, enquiryRepo, cfg.Store.Backend)

	// Create router
	r := router.New(router.Config{
		Handler:           healthHandler,
		CarHandler:        carHandler,
		EnquiryHandler:    enquiryHandler,
		AuthHandler:       authHandler,
		AdminHandler:      adminHandler,
		SessionMiddleware: middleware.RequireSession(sessions),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
