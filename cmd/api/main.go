package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/playforge/wallet-ledger/internal/api"
	"github.com/playforge/wallet-ledger/internal/infra/logging"
	"github.com/playforge/wallet-ledger/internal/infra/pgutils"
	"github.com/playforge/wallet-ledger/internal/services/wallet"
	"github.com/playforge/wallet-ledger/pkg/envconf"
	"github.com/playforge/wallet-ledger/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdownqueue.Add(func(context.Context) error {
		slog.Info("Close database pool")

		return db.Close()
	})

	walletSrv := wallet.New(db)

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, walletSrv)

	shutdownqueue.Add(func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("Wallet API started", "port", cfg.Port)

	// --- Wait until either context cancels or server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; deferred shutdownqueue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
