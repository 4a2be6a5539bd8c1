package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "movienuts/docs" // swagger docs

	"movienuts/internal/auth"
	"movienuts/internal/cache"
	"movienuts/internal/config"
	"movienuts/internal/db"
	"movienuts/internal/handler"
	"movienuts/internal/repository"
	"movienuts/internal/router"
	"movienuts/internal/service"
	"movienuts/internal/tmdb"
	"movienuts/internal/validation"
)

// @title MovieNuts API
// @version 1.0
// @description Movie review API: accounts, a locally cached TMDB catalog, and user reviews.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("SECRET_KEY is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	blogRepo := repository.NewBlogRepository(database)
	movieRepo := repository.NewMovieRepository(database)

	// Initialize auth components
	issuer := auth.NewTokenIssuer(cfg.JWTSecret)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	validator := validation.New()

	tmdbClient := tmdb.New(cfg.TMDBBaseURL, cfg.TMDBAccessToken, log.WithField("component", "tmdb"))

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, issuer, validator)
	blogService := service.NewBlogService(blogRepo, validator)
	movieService := service.NewMovieService(movieRepo, tmdbClient, cacheClient, log.WithField("component", "movies"))
	userService := service.NewUserService(userRepo, validator)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)
	movieHandler := handler.NewMovieHandler(movieService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	e.Use(middleware.RequestID())

	// Register routes
	router.Register(e, cfg, issuer, authHandler, blogHandler, movieHandler, userHandler)

	addr := ":" + cfg.ServerPort
	log.WithField("addr", addr).Info("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
