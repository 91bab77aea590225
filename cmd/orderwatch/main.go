package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/avetikov/orderwatch/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	detector := NewDetector()
	notifier := NewNotifier(StdoutBell{}, 6*time.Second, sugaredLogger)
	watcher := NewWatcher(repository, detector, notifier, cfg.PollInterval, sugaredLogger)

	// the push channel is optional: without a broker the poll loop still
	// detects every order, just a few seconds later
	var publisher Publisher
	mq, err := DialMQ(cfg.AmqpURI)
	if err != nil {
		sugaredLogger.Errorf("push channel unavailable, poll only: %s", err.Error())
	} else {
		publisher = mq
		defer mq.Close()
		go func() {
			if err := mq.Subscribe(ctx, watcher, sugaredLogger); err != nil {
				sugaredLogger.Errorf("push subscription stopped: %s", err.Error())
			}
		}()
	}

	go watcher.Run(ctx)

	service := NewService(repository, publisher, detector, notifier, sugaredLogger)
	handlers := NewHandlers(service, watcher, detector, notifier, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	api.Post("/orders", handlers.Checkout)

	admin := api.Group("/admin")
	admin.Get("/orders", handlers.AdminOrders)
	admin.Get("/orders/:key", handlers.AdminOrder)
	admin.Put("/orders/:key/status", handlers.UpdateOrderStatus)
	admin.Post("/orders/refresh", handlers.RefreshOrders)
	admin.Put("/settings", handlers.UpdateSettings)
	admin.Get("/notifications", handlers.Notifications)
	admin.Post("/notifications/read-all", handlers.MarkAllNotificationsRead)
	admin.Post("/notifications/reset", handlers.ResetNewCount)
	admin.Post("/notifications/:key/read", handlers.MarkNotificationRead)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	<-ctx.Done()
	sugaredLogger.Info("Shutting down service...")
	_ = app.Shutdown()
}
