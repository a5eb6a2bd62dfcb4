package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-market/internal/core/config"
	"shipment-market/internal/core/identity"
	"shipment-market/internal/core/logger"
	"shipment-market/internal/core/server"
	eventhandler "shipment-market/internal/features/events/handler"
	eventservice "shipment-market/internal/features/events/service"
	marketadapter "shipment-market/internal/features/marketplace/adapters"
	markethandler "shipment-market/internal/features/marketplace/handler"
	"shipment-market/internal/features/marketplace/ports"
	marketservice "shipment-market/internal/features/marketplace/service"
	"shipment-market/internal/features/marketplace/store"

	"go.uber.org/zap"
)

// @title Shipment Market API
// @version 1.0
// @description Peer-to-peer shipment marketplace: customers post shipments, carriers buy and deliver them, and delivery is confirmed by the owner or by a bearer of the pre-shared secret.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	admins := identity.NewSet(cfg.Auth.Admins()...)

	// Snapshot store is optional; without REDIS_URL the marketplace starts empty.
	var snapshots ports.SnapshotStore
	if cfg.Snapshot.RedisURL != "" {
		redisStore, err := marketadapter.NewRedisSnapshotStore(context.Background(), cfg.Snapshot.RedisURL)
		if err != nil {
			l.Fatal("Snapshot store unreachable", zap.Error(err))
		}
		defer redisStore.Close()
		snapshots = redisStore
		l.Info("Snapshot store connected")
	}

	eventLog := eventservice.NewEventLog(cfg.Events.LogCapacity, time.Now)
	audit := eventservice.NewAuditService(
		eventLog,
		admins,
		time.Duration(cfg.Events.RetentionHours)*time.Hour,
		time.Now,
	)

	market := marketservice.NewMarketService(
		store.NewCustomerRegistry(),
		store.NewCarrierRegistry(),
		store.NewShipmentStore(),
		store.NewIDGenerator(0),
		audit,
		snapshots,
		admins,
		time.Now,
	)

	if err := market.RestoreSnapshot(context.Background()); err != nil {
		l.Fatal("Snapshot restore failed", zap.Error(err))
	}

	marketHdl := markethandler.NewMarketHandler(market)
	eventsHdl := eventhandler.NewEventsHandler(audit)

	srv := server.New(cfg)

	// Register Routes. Literal paths go first so they are not shadowed by :id.
	srv.App.Post("/shipments", marketHdl.CreateShipment)
	srv.App.Get("/shipments/pending", marketHdl.ListPendingShipments)
	srv.App.Get("/shipments/mine", marketHdl.ListUserShipments)
	srv.App.Get("/shipments/:id", marketHdl.GetShipment)
	srv.App.Post("/shipments/:id/buy", marketHdl.BuyShipment)
	srv.App.Post("/shipments/:id/finalize", marketHdl.FinalizeShipment)
	srv.App.Get("/shipments", marketHdl.ListShipments)
	srv.App.Get("/roles", marketHdl.Roles)
	srv.App.Get("/events", eventsHdl.ListEvents)
	srv.App.Post("/events/purge", eventsHdl.PurgeOldEvents)
	srv.App.Post("/admin/snapshot", marketHdl.SaveSnapshot)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		l.Info("Shutting down")
		if err := srv.App.Shutdown(); err != nil {
			l.Error("Shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
