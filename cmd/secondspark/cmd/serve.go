package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/TravisBoyd884/SecondSpark/internal/api/handlers"
	"github.com/TravisBoyd884/SecondSpark/internal/api/middleware"
	"github.com/TravisBoyd884/SecondSpark/internal/config"
	"github.com/TravisBoyd884/SecondSpark/internal/ebay"
	"github.com/TravisBoyd884/SecondSpark/internal/etsy"
	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	"github.com/TravisBoyd884/SecondSpark/internal/store"
	"github.com/TravisBoyd884/SecondSpark/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	api := humaecho.New(e, huma.DefaultConfig("SecondSpark", Version))

	// Marketplace sync clients stay nil when unconfigured; the items
	// handler reports "not configured" instead of calling out.
	var ebaySync, etsySync marketplace.SyncClient

	ebayClient := buildEbayClient(cfg, log)
	if ebayClient != nil {
		ebaySync = ebayClient
		handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(ebayClient))
	} else {
		log.Info("ebay sync disabled, no credentials configured")
	}

	if cfg.Etsy.ClientID != "" {
		etsySync = etsy.NewClient(etsy.ClientOpts{
			ClientID:    cfg.Etsy.ClientID,
			AccessToken: cfg.Etsy.AccessToken,
			ShopID:      cfg.Etsy.ShopID,
			Logger:      log,
		})
	} else {
		log.Info("etsy sync disabled, no credentials configured")
	}

	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(st))
	handlers.RegisterOrganizationRoutes(api, handlers.NewOrganizationsHandler(st))
	handlers.RegisterUserRoutes(api, handlers.NewUsersHandler(st))
	handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(st, ebaySync, etsySync, log))
	handlers.RegisterTransactionRoutes(api, handlers.NewTransactionsHandler(st))
	handlers.RegisterImageRoutes(e, handlers.NewImagesHandler(st, cfg.Uploads.Dir, cfg.Uploads.MaxSizeByte))

	hh := handlers.NewHealthHandler(st)
	e.GET("/healthz", hh.Healthz)
	e.GET("/readyz", hh.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// buildEbayClient wires the eBay sync client from config, or returns nil
// when no application credentials are present.
func buildEbayClient(cfg *config.Config, log *slog.Logger) *ebay.Client {
	if cfg.Ebay.ClientID == "" {
		return nil
	}

	tokens := ebay.NewTokenManager(cfg.Ebay.ClientID, cfg.Ebay.ClientSecret, cfg.Ebay.Environment)
	if cfg.Ebay.UserToken != "" {
		// Statically configured user tokens carry no expiry metadata;
		// assume the standard two-hour lifetime from startup.
		tokens.SetUserToken(cfg.Ebay.UserToken, time.Now().Add(2*time.Hour))
	}

	limiter := marketplace.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	return ebay.NewClient(tokens, cfg.Ebay.Environment,
		ebay.WithMarketplaceID(cfg.Ebay.Marketplace),
		ebay.WithRateLimiter(limiter),
		ebay.WithLogger(log),
	)
}
