package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreasstove999/pet-pantry-go/internal/auth"
	"github.com/andreasstove999/pet-pantry-go/internal/cart"
	"github.com/andreasstove999/pet-pantry-go/internal/catalog"
	"github.com/andreasstove999/pet-pantry-go/internal/config"
	"github.com/andreasstove999/pet-pantry-go/internal/contact"
	httpapi "github.com/andreasstove999/pet-pantry-go/internal/http"
	"github.com/andreasstove999/pet-pantry-go/internal/review"
	"github.com/andreasstove999/pet-pantry-go/internal/storage"
)

func main() {
	logger := log.New(os.Stdout, "[pet-pantry] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	var kv storage.KV
	if cfg.StoragePath == "" {
		logger.Printf("no storage path set, state will not survive restarts")
		kv = storage.NewMemory()
	} else {
		sqliteKV, err := storage.OpenSQLite(cfg.StoragePath, logger)
		if err != nil {
			logger.Fatalf("open storage: %v", err)
		}
		defer sqliteKV.Close()
		kv = sqliteKV
	}
	gateway := storage.NewGateway(kv, logger)

	var fetcher catalog.Fetcher
	if cfg.CatalogURL != "" {
		fetcher = catalog.NewHTTPFetcher(cfg.CatalogURL, &http.Client{Timeout: cfg.CatalogTimeout})
		logger.Printf("catalog source: %s", cfg.CatalogURL)
	} else {
		fetcher = catalog.StaticFetcher{}
		logger.Printf("catalog source: embedded dataset")
	}

	cartStore := cart.NewStore(gateway)
	cartStore.Subscribe(func(items []cart.LineItem) {
		logger.Printf("cart updated: %d items", cart.BadgeCount(items))
	})

	router := httpapi.NewRouter(httpapi.Deps{
		Catalog:          catalog.NewCache(fetcher),
		Cart:             cartStore,
		Auth:             auth.NewStore(gateway),
		Reviews:          review.NewStore(gateway),
		Contact:          contact.NewStore(gateway),
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("pet-pantry listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
