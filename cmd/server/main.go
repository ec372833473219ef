package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pizzapos/backend/internal/adapter/handler"
	"github.com/pizzapos/backend/internal/adapter/pdf"
	"github.com/pizzapos/backend/internal/adapter/storage"
	"github.com/pizzapos/backend/internal/config"
	"github.com/pizzapos/backend/internal/core/service"
	"github.com/pizzapos/backend/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("failed to open mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		zlog.Fatal("failed to ping mysql", zap.Error(err))
	}
	zlog.Info("connected to mysql")

	// Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Fatal("failed to connect redis", zap.Error(err))
	}
	zlog.Info("connected to redis")

	// Adapters
	sequence := storage.NewRedisSequence(rdb)
	catalogRepo := storage.NewMySQLCatalog(db)
	customerRepo := storage.NewMySQLCustomers(db)
	invoiceRepo := storage.NewMySQLInvoices(db, sequence)

	// Services
	invoiceService := service.NewInvoiceService(catalogRepo, customerRepo, invoiceRepo)
	catalogService := service.NewCatalogService(catalogRepo, invoiceRepo)
	customerService := service.NewCustomerService(customerRepo, invoiceRepo)

	// HTTP
	renderer := pdf.NewRenderer(cfg.ShopName, cfg.Currency)
	router := handler.NewRouter(
		handler.NewInvoiceHandler(invoiceService, renderer),
		handler.NewCatalogHandler(catalogService),
		handler.NewCustomerHandler(customerService),
		cfg.CORSOrigin,
		zlog,
	)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		zlog.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	zlog.Info("HTTP server stopped")

	rdb.Close()
	db.Close()
	zlog.Info("connections closed")
}
