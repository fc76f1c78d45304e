// Command webhook-listener runs a small HTTP server that receives,
// verifies and logs MarzPay callback deliveries. Point the callback_url
// of collection or disbursement requests at it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Katznicho/marzpay-go/config"
	"github.com/Katznicho/marzpay-go/logging"
	"github.com/Katznicho/marzpay-go/webhook"
)

const shutdownPeriod = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.WebhookSecret == "" {
		fmt.Fprintln(os.Stderr, "MARZPAY_WEBHOOK_SECRET must be set")
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	app := fiber.New(fiber.Config{
		AppName:      "marzpay-webhook-listener",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	verifier := webhook.NewVerifier(cfg.WebhookSecret)
	app.Post("/webhooks/marzpay", webhook.Handler(verifier, logger, func(event webhook.Event) error {
		logger.Info("callback", "type", event.Type, "data", event.Data)
		return nil
	}))

	addr := ":" + envOr("PORT", "8080")

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("listener exited cleanly")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
