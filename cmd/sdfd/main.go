package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"sdformat-go/internal/codegen"
	"sdformat-go/internal/config"
	"sdformat-go/internal/db"
	"sdformat-go/internal/docstore"
	"sdformat-go/internal/httpapi"
	"sdformat-go/internal/logging"
	"sdformat-go/schemas"
)

func main() {
	cfgPath := flag.String("config", "/etc/sdfd.yaml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	set, err := schemas.Load(schemas.DefaultVersion)
	if err != nil {
		logger.Fatal("load bundled schema", zap.Error(err))
	}
	catalog, err := codegen.Compile(set, codegen.DefaultOptions())
	if err != nil {
		logger.Fatal("compile bundled schema", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DBDSN, db.DefaultPoolConfig)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	router := httpapi.NewRouter(cfg, httpapi.Deps{
		Store:  docstore.New(pool, logger.Named("docstore")),
		DB:     pool,
		Types:  catalog.Types,
		Logger: logger.Named("http"),
	})

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("sdfd listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("sdf_version", schemas.DefaultVersion),
			zap.Int("types", len(catalog.Types)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
}
