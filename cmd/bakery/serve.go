package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"bakery/pkg/domain/service"
	"bakery/pkg/infrastructure/auth"
	"bakery/pkg/infrastructure/event"
	"bakery/pkg/infrastructure/storage"
	"bakery/pkg/infrastructure/transport"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run migrations and serve the HTTP API",
		Action: func(c *cli.Context) error {
			cnf, err := parseEnv()
			if err != nil {
				return err
			}
			if cnf.JWTSecret == "" {
				return errors.New("BAKERY_JWT_SECRET is required")
			}
			loc, err := cnf.location()
			if err != nil {
				return err
			}

			if err := storage.MigrateUp(cnf.storage()); err != nil {
				return err
			}
			db, err := storage.Open(cnf.storage())
			if err != nil {
				return err
			}
			defer db.Close()

			dispatcher := event.NewLogDispatcher(log.StandardLogger())
			tokens := auth.NewTokenManager([]byte(cnf.JWTSecret), cnf.TokenTTL)
			users := storage.NewUserRepository(db)
			products := storage.NewProductRepository(db)

			services := transport.Services{
				Orders: service.NewOrderService(
					storage.NewOrderRepository(db), products, service.NewSystemClock(loc), dispatcher),
				Products: service.NewProductService(products, dispatcher),
				Users:    service.NewUserService(users, auth.NewPasswordManager(0), tokens, dispatcher),
				Comments: service.NewCommentService(storage.NewCommentRepository(db), products, dispatcher),
			}
			srv := &http.Server{
				Addr:              cnf.HTTPAddress,
				Handler:           transport.Router(services, tokens),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.WithField("address", cnf.HTTPAddress).Info("Starting server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return errors.Wrap(err, "listen")
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("Shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
}
