package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/models/migrations"
	"github.com/Rakhulsr/go-catalog/app/routes"
)

// Serve connects to the database, migrates it and runs the API until ctx is
// cancelled or the process receives SIGINT/SIGTERM.
func Serve(ctx context.Context, env configs.ENV) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := configs.OpenConnection(env)
	if err != nil {
		return err
	}
	log.Println("✅ Database connected.")

	if err := migrations.AutoMigrate(db); err != nil {
		return err
	}

	redisClient := configs.NewRedisClient(ctx, env)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router, err := routes.NewRouter(db, routes.Options{Env: env, Redis: redisClient})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
