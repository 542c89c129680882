package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/devcontracting/dcsite/internal/backup"
	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/contact"
	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/db"
	"github.com/devcontracting/dcsite/internal/email"
	"github.com/devcontracting/dcsite/internal/handlers"
	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/devcontracting/dcsite/internal/logos"
	"github.com/devcontracting/dcsite/internal/middleware"
	"github.com/devcontracting/dcsite/internal/pages"
	"github.com/devcontracting/dcsite/internal/tls"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// privateProxies are trusted for X-Forwarded-For when server.behind_proxy is set
var privateProxies = []string{
	"127.0.0.0/8", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16", "::1/128", "fc00::/7",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the dcsite HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}
		defer db.Close()

		log, err := newLogger()
		if err != nil {
			return err
		}
		if !strings.EqualFold(config.GetString("log.level"), "debug") {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, log)
	},
}

func runServer(ctx context.Context, log *logger.Logger) error {
	if config.GetString("auth.jwt_secret") == defaultJWTSecret {
		log.Warn("auth.jwt_secret is the default; run 'dcsite admin set-password' before exposing the inbox")
	}

	store, err := pages.NewStore(config.GetString("content.pages_dir"), log)
	if err != nil {
		return err
	}

	resolver := logos.NewResolver(logos.Options{
		BaseURL:    config.GetString("logos.base_url"),
		TTL:        config.GetDuration("logos.ttl"),
		FailureTTL: config.GetDuration("logos.failure_ttl"),
		Logger:     log,
	})

	// A nil interface, not a nil *EmailService, disables notifications.
	var sender email.Sender
	if svc, err := email.NewEmailService(log); err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("contact notifications disabled")
	} else {
		sender = svc
	}

	deps := &handlers.Deps{
		DB:    db.GetDB(),
		Pages: store,
		Contact: contact.NewService(contact.Options{
			DB:            db.GetDB(),
			Sender:        sender,
			NotifyTo:      config.GetString("contact.notify_to"),
			NotifyTimeout: config.GetDuration("contact.notify_timeout"),
			Logger:        log,
		}),
		Logos: resolver,
		Log:   log,
		UI:    handlers.UIFromConfig(),
	}

	blocked := config.GetStringSlice("security.blocked_ips")
	if _, invalid := middleware.ParseBlocklist(blocked); len(invalid) > 0 {
		log.WithFields(map[string]any{"entries": invalid}).Warn("ignoring invalid security.blocked_ips entries")
	}

	var trusted []string
	if config.GetBool("server.behind_proxy") {
		trusted = privateProxies
	}

	router, err := handlers.NewRouter(deps, handlers.RouterOptions{
		BlockedIPs:     blocked,
		RateLimit:      config.GetInt("contact.rate_limit"),
		RateWindow:     config.GetDuration("contact.rate_window"),
		TrustedProxies: trusted,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	// abort stops the background workers before returning a setup error
	abort := func(err error) error {
		cancel()
		_ = g.Wait()
		return err
	}

	if store.Dir() != "" {
		g.Go(func() error {
			if err := store.Watch(gctx, pages.DefaultDebounce); err != nil && !errors.Is(err, context.Canceled) {
				log.Error(err, "content watcher stopped")
			}
			return nil
		})
	}

	if config.GetBool("logos.warm_on_start") {
		g.Go(func() error {
			if err := resolver.Warm(gctx, content.PartnerDomains()); err != nil && !errors.Is(err, context.Canceled) {
				log.Error(err, "logo warm-up failed")
			}
			return nil
		})
	}

	if config.GetBool("backups.enable_auto_backup") && config.GetString("database.type") == "sqlite" {
		manager := backup.NewBackupManager(config.GetString("backups.path"), db.GetDB())
		manager.Retention = config.GetInt("backups.retention")
		scheduler := backup.NewScheduler(manager, log)
		if interval := config.GetDuration("backups.interval"); interval > 0 {
			scheduler.SetInterval(interval)
		}
		schedulerDone := scheduler.Start()
		log.Info("backup scheduler started")
		g.Go(func() error {
			<-gctx.Done()
			scheduler.Stop()
			<-schedulerDone
			return nil
		})
	}

	baseDomain := config.GetString("server.base_domain")
	httpAddr := ":" + config.GetString("server.http_port")

	if !config.GetBool("server.tls_enabled") {
		srv := &http.Server{Addr: httpAddr, Handler: router, ReadHeaderTimeout: 10 * time.Second}
		log.WithFields(map[string]any{"addr": httpAddr, "base_domain": baseDomain}).Info("starting HTTP server (TLS disabled)")
		g.Go(func() error { return serve(gctx, srv, false, log) })
		return g.Wait()
	}

	tlsCfg, err := tls.LoadConfig()
	if err != nil {
		return abort(fmt.Errorf("failed to load TLS config: %w", err))
	}
	tlsManager, err := tls.NewManager(tlsCfg, log)
	if err != nil {
		return abort(fmt.Errorf("failed to initialize TLS manager: %w", err))
	}
	if err := tlsManager.Manage(gctx); err != nil {
		return abort(err)
	}

	httpsPort := config.GetString("server.https_port")
	redirect := gin.New()
	redirect.Use(middleware.HTTPSRedirectMiddleware(httpsPort))

	// Port 80 answers ACME challenges and redirects everything else
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           tlsManager.HTTPChallengeHandler(redirect),
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpsAddr := ":" + httpsPort
	httpsSrv := &http.Server{
		Addr:              httpsAddr,
		Handler:           router,
		TLSConfig:         tlsManager.GetTLSConfig(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithFields(map[string]any{"http": httpAddr, "https": httpsAddr, "base_domain": baseDomain}).Info("starting HTTPS server")
	g.Go(func() error { return serve(gctx, httpSrv, false, log) })
	g.Go(func() error { return serve(gctx, httpsSrv, true, log) })
	return g.Wait()
}

// serve runs srv until ctx is done, then drains it. With useTLS the
// certificates come from srv.TLSConfig.
func serve(ctx context.Context, srv *http.Server, useTLS bool, log *logger.Logger) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w (ports below 1024 usually need root)", srv.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		if useTLS {
			errCh <- srv.ServeTLS(ln, "", "")
		} else {
			errCh <- srv.Serve(ln)
		}
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.WithFields(map[string]any{"addr": srv.Addr}).Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s: %w", srv.Addr, err)
	}
	return nil
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
