package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP editor and preview server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = a.cfg.App.Port
		}

		srv := fiber.New(fiber.Config{DisableStartupMessage: true})
		srv.Use(recover.New())
		srv.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
		a.handler.Register(srv)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("server listening", zap.String("port", port))
			errCh <- srv.Listen(":" + port)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		a.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.ShutdownWithContext(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides app.port)")
	rootCmd.AddCommand(serveCmd)
}
