package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/storeflow/storefront/internal/config"
	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/httpserver"
	"github.com/storeflow/storefront/internal/logging"
	"github.com/storeflow/storefront/internal/middleware/loggingmw"
	"github.com/storeflow/storefront/internal/middleware/sanitize"
	"github.com/storeflow/storefront/internal/repo"
	"github.com/storeflow/storefront/internal/search"
	"github.com/storeflow/storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	client, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	if err := client.Migrate(); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		prod, err := events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka error: %v", err)
		}
		publisher = prod
	}

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch error: %v", err)
		}
	}

	catalogRepo := &repo.CatalogRepo{Client: client}

	authSvc := &service.AuthService{
		Users:         &repo.UserRepo{Client: client},
		Tokens:        &repo.TokenRepo{Client: client},
		Events:        publisher,
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	}
	catalogSvc := &service.CatalogService{Repo: catalogRepo, Events: publisher}
	if searchClient != nil {
		catalogSvc.Index = searchClient
	}
	cartSvc := &service.CartService{Repo: &repo.CartRepo{Client: client}, Products: catalogRepo, Events: publisher}
	wishlistSvc := &service.WishlistService{Repo: &repo.WishlistRepo{Client: client}, Products: catalogRepo}
	orderSvc := &service.OrderService{Store: &repo.OrderRepo{Client: client}, Events: publisher}
	userSvc := &service.UserService{Repo: &repo.UserRepo{Client: client}}

	tracker := &events.Tracker{Publisher: publisher, Logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpserver.NewErrorHandler(logger, tracker, cfg.IsProduction())
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: []string{cfg.CORSOrigin}}),
		loggingmw.RequestLogger(logger),
		sanitize.Middleware(),
	)

	deps := &httpserver.Deps{
		AccessSecret: cfg.JWTAccessSecret,
		Auth:         &httpserver.AuthHTTP{Svc: authSvc},
		Catalog:      &httpserver.CatalogHTTP{Svc: catalogSvc},
		Cart:         &httpserver.CartHTTP{Svc: cartSvc},
		Wishlist:     &httpserver.WishlistHTTP{Svc: wishlistSvc},
		Orders:       &httpserver.OrderHTTP{Svc: orderSvc},
		Users:        &httpserver.UserHTTP{Svc: userSvc},
		Health:       &httpserver.HealthHTTP{DB: client},
	}
	if searchClient != nil {
		deps.Search = &httpserver.SearchHTTP{Client: searchClient}
	}

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := client.Close(); err != nil {
		logger.Error("db close error", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
