package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DocTrackerGo/config"
	"DocTrackerGo/middleware"
	"DocTrackerGo/routes"
	"DocTrackerGo/services"
	"DocTrackerGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Create tables and indexes before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(false)
	if err != nil {
		return err
	}
	defer closeApp()
	conf := a.conf

	if serveMigrate {
		if err := a.migrate(cmd.Context()); err != nil {
			return err
		}
	}

	if err := config.InitRedis(conf); err != nil {
		return err
	}
	var revoker utils.TokenRevoker
	if config.RedisClient != nil {
		revoker = utils.NewRedisRevoker(config.RedisClient)
	}

	secret := conf.JWTSecret
	if secret == "" {
		secret = utils.GenerateID()
		config.Logger.Warnw("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	utils.SetJWTSecret(secret, conf.TokenTTL())

	if err := utils.RegisterValidators(); err != nil {
		return err
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	entryService := services.NewEntryService(a.entries)
	r := gin.New()
	middleware.SetupMiddleware(r, conf.Origins())
	routes.RegisterRoutes(r, routes.Services{
		Users:        services.NewUserService(a.users),
		Entries:      entryService,
		Productivity: services.NewProductivityService(entryService),
		Dashboard:    services.NewDashboardService(entryService),
		Export:       services.NewExportService(entryService),
		Revoker:      revoker,
	})

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server listening", "port", conf.ServerPort, "driver", conf.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatalw("server failed", "error", err)
		}
	}()

	// wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if config.RedisClient != nil {
		_ = config.RedisClient.Close()
	}
	config.Logger.Infow("server stopped")
	return nil
}
