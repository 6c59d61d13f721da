package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/zach-dev-api/internal/api"
	"github.com/Zachkp/zach-dev-api/internal/contact"
)

const shutdownTimeout = 10 * time.Second

var serverPort string // For the --port flag

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API server",
	Long: `The serve command opens the content database, then serves the blog,
project, contact and admin endpoints until it receives SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serverPort, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serverPort != "" {
		appConfig.Port = serverPort
	}
	if appConfig.Mode != "" {
		gin.SetMode(appConfig.Mode)
	}
	debug := gin.Mode() == gin.DebugMode

	db, svc, validator, err := openService(debug)
	if err != nil {
		return err
	}
	defer db.Close()

	mailer, err := contact.New(appConfig.Mailer())
	if err != nil {
		return fmt.Errorf("failed to configure contact mailer: %w", err)
	}

	router := api.NewRouter(svc, validator, mailer, api.Options{
		CORSOrigins:  appConfig.CORSOrigins,
		AdminEnabled: appConfig.Admin.Enabled,
		AdminToken:   appConfig.Admin.Token,
	})

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
