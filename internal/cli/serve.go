package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"sunday-pay/internal/handler"
)

func newServeCommand(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.Server.Port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, ":"+port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from config or $PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context, addr string) error {
	h := handler.New(a.engine, a.log)
	server := &fasthttp.Server{
		Handler:      h.Handle,
		Name:         "sundaypay",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Sunday pay calculator starting", "addr", addr)
		errCh <- server.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		a.log.Error("server stopped", "error", err)
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
