package main

import (
	"context"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/quannhg/graduation-invitation/internal/api/handlers/invitation"
	mw "github.com/quannhg/graduation-invitation/internal/api/middlewares"
	"github.com/quannhg/graduation-invitation/internal/api/routers"
	"github.com/quannhg/graduation-invitation/internal/config"
	"github.com/quannhg/graduation-invitation/internal/metrics"
	"github.com/quannhg/graduation-invitation/internal/otel"
	"github.com/quannhg/graduation-invitation/internal/rsvp"
	"github.com/quannhg/graduation-invitation/internal/services"
	"github.com/quannhg/graduation-invitation/pkg/cron"
	"github.com/quannhg/graduation-invitation/pkg/utils"
	"github.com/quannhg/graduation-invitation/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		utils.Logger.Fatal("Failed to load config: ", err)
	}

	utils.InitLogger(cfg.AppEnv, cfg.LogLevel)

	cleanup, err := otel.Init(ctx, otel.Settings{
		Endpoint:    cfg.OTLPEndpoint,
		Environment: cfg.AppEnv,
		SampleRatio: cfg.OTelSampleRatio,
	})
	if err != nil {
		utils.Logger.Fatal("Failed to init tracing: ", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = cleanup(shutdownCtx)
	}()

	client := services.NewAppsScriptClient(cfg.AppsScriptURL, cfg.AppsScriptTimeout)
	if !client.Configured() {
		utils.Logger.Warn("APPS_SCRIPT_URL is not configured; RSVPs will not be relayed")
	}
	cache := services.NewCachedPersonalizer(client, cfg.PersonalizationTTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tally := metrics.NewTally()
	recorder := metrics.Multi{metrics.NewPrometheus(reg), tally}

	notifier := services.NewEmailNotifier(cfg.SMTP(), cfg.OrganizerEmail)
	if notifier.Enabled() {
		utils.Logger.Infof("Organizer notifications enabled for %s", cfg.OrganizerEmail)
	}

	opts := rsvp.DefaultOptions()
	opts.AttendanceMode = rsvp.AttendanceMode(cfg.AttendanceMode)
	opts.Personalization = cfg.PersonalizationEnabled
	opts.PrefillName = cfg.PrefillNameEnabled
	opts.HostName = cfg.HostName

	ctrl := rsvp.NewController(opts, client, cache,
		rsvp.WithNotifier(notifier),
		rsvp.WithRecorder(recorder),
	)

	h, err := invitation.New(ctrl, web.Files)
	if err != nil {
		utils.Logger.Fatal("Failed to load templates: ", err)
	}
	static, err := fs.Sub(web.Files, "static")
	if err != nil {
		utils.Logger.Fatal("Failed to load static assets: ", err)
	}

	c := cron.StartCronJob(cache, tally)
	defer c.Stop()

	router := routers.MainRouter(h, static, reg, cfg.RateLimitPerMinute)
	secureMux := mw.RequestID(mw.AccessLog(mw.SecurityHeaders(router)))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           otelhttp.NewHandler(secureMux, otel.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Logger.Infof("Server is running on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("Error starting the server: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Logger.WithError(err).Error("Failed to shut down server")
	}
}
