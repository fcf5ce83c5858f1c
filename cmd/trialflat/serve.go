package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/langcoglab/trialflat/pkg/trialflat"
	"github.com/langcoglab/trialflat/pkg/trialflat/server"
	"github.com/langcoglab/trialflat/pkg/trialflat/transform"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(lf *layoutFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload and download API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := lf.options(cmd)
			if err != nil {
				return err
			}
			if err := transform.Validate(opts.Layout); err != nil {
				return errors.Join(trialflat.ErrInvalidLayout, err)
			}
			return runServe(cmd.Context(), addr, opts)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}

func runServe(ctx context.Context, addr string, opts trialflat.Options) error {
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    addr,
		Handler: server.SetupRouter(server.NewController(opts)),
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logrus.Info("Shutting down")
	return srv.Shutdown(shutdownCtx)
}
