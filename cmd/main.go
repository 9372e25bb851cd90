package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadfine/api"
	"roadfine/config"
	"roadfine/pkg/logger"
	"roadfine/pkg/notify"
	"roadfine/pkg/payment"
	"roadfine/pkg/qr"
	"roadfine/pkg/token"
	"roadfine/service"
	"roadfine/storage/license"
	"roadfine/storage/postgres"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	// 3. Operational database (migrations run here)
	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	// 4. External license registry (read-only, no migrations)
	registry, err := license.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to license registry", logger.Error(err))
		os.Exit(1)
	}
	defer registry.Close()

	// 5. Domain services
	tokens := token.NewService(cfg.JWTSecret)
	codes := qr.NewGenerator(cfg.QRCodeDir)
	provider := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.FrontendURL)
	pusher := notify.NewFCMPusher(cfg.FCMServerKey, log)

	svc := service.New(pgStore, registry, tokens, codes, provider, pusher, log)

	// 6. HTTP server
	server := api.New(cfg, svc, tokens, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(fmt.Sprintf("roadfine API listening on :%d", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", logger.Error(err))
			os.Exit(1)
		}
	}()

	// 7. Graceful Shutdown listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
	}
}
