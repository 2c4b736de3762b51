package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phishing-url-service/internal/adapters/primary/http/handlers"
	"phishing-url-service/internal/adapters/primary/http/middleware"
	"phishing-url-service/internal/adapters/secondary/configmap"
	"phishing-url-service/internal/adapters/secondary/filesource"
	"phishing-url-service/internal/adapters/secondary/httpsource"
	"phishing-url-service/internal/adapters/secondary/memory"
	"phishing-url-service/internal/adapters/secondary/postgres"
	"phishing-url-service/internal/adapters/secondary/sklearn"
	"phishing-url-service/internal/adapters/secondary/sqlite"
	"phishing-url-service/internal/config"
	ports "phishing-url-service/internal/core/ports/output"
	"phishing-url-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Artifact sources, selected by location scheme
	loader := services.NewArtifactLoader(sklearn.NewCodec())
	loader.Register(httpsource.NewHTTPSource(&cfg.Artifact), "http", "https")
	loader.Register(filesource.NewFileSource(), "file")

	// ConfigMap source (Optional - based on config)
	if cfg.Kubernetes.Enabled {
		src, err := configmap.NewConfigMapSource(&cfg.Kubernetes)
		if err != nil {
			log.Warnf("ConfigMap source init failed (continuing without K8s integration): %v", err)
		} else {
			loader.Register(src, configmap.Scheme)
			log.Info("ConfigMap artifact source initialized")
		}
	} else {
		log.Info("Kubernetes integration disabled")
	}

	// Load once, before serving. Failures leave the service degraded.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Artifact.FetchTimeout+10*time.Second)
	artifacts := loader.LoadAll(loadCtx, cfg.Artifact.ModelURL, cfg.Artifact.VectorizerURL)
	cancelLoad()
	if artifacts.Ready() {
		log.Info("model and vectorizer loaded")
	} else {
		log.Error("model or vectorizer failed to load; predictions will return a system error")
	}

	// Session store
	sessionRepo, closeStore, err := newSessionRepository(context.Background(), cfg)
	if err != nil {
		log.Fatalf("init session store: %v", err)
	}
	defer closeStore()

	// Core Services (Application Layer)
	verdictSvc := services.NewVerdictService(artifacts)
	sessionSvc := services.NewSessionService(sessionRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(verdictSvc, sessionSvc, handlers.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.Session.TTL,
		Secure: cfg.Session.SecureCookie,
	})

	// Setup router
	corsMW, err := middleware.CORS(cfg.CORS.AllowedOrigins)
	if err != nil {
		log.Fatalf("init cors: %v", err)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), corsMW, gin.Recovery())
	router.SetHTMLTemplate(handlers.Templates())

	h.RegisterWebRoutes(router)
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)
	router.GET("/healthz", h.Healthz)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
		return
	}

	log.Info("server stopped")
}

func newSessionRepository(ctx context.Context, cfg *config.Config) (ports.SessionRepository, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLite.Path).Info("sqlite session store opened")
		return sqlite.NewSessionRepository(db, cfg.Session.TTL), func() { db.Close() }, nil

	case config.SessionBackendPostgres:
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("parse db config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("create db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping db: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("database connection established")
		return postgres.NewSessionRepository(pool, cfg.Session.TTL), pool.Close, nil

	default:
		log.Info("using in-memory session store")
		return memory.NewSessionRepository(cfg.Session.TTL, 0), func() {}, nil
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
