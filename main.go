package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jeniaquome/pioneer-mockup-sub002/cliparse"
	"github.com/jeniaquome/pioneer-mockup-sub002/db"
	"github.com/jeniaquome/pioneer-mockup-sub002/logger"
	"github.com/jeniaquome/pioneer-mockup-sub002/middleware"
	"github.com/jeniaquome/pioneer-mockup-sub002/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log.SugaredLogger.Desugar())

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg cliparse.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect and verify
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		return err
	}
	log.Info("database schema ready", "database_type", cfg.DatabaseType)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(dbConn, cfg, log)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "port", cfg.Port, "site_url", cfg.SiteURL)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server closed")
	return nil
}
