package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/cache"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/config"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/observability"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/session"
	"github.com/crakton/cashworxs-admin-sub000/internal/stores"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Address != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				log.Warn("Metrics listener stopped", map[string]interface{}{
					"address": cfg.Metrics.Address,
					"error":   err.Error(),
				})
			}
		}()
	}

	sess, err := session.New(cfg.Session.Dir, cfg.Session.TokenTTLDuration())
	if err != nil {
		log.Error("Failed to initialize session store", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	refCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Error("Failed to connect to redis", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer refCache.Close()

	client := apiclient.New(apiclient.Options{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       config.GetDuration(cfg.API.Timeout),
		Session:       sess,
		Logger:        log,
		Observability: obs,
	})

	deps := &dependencies{
		cfg:           cfg,
		logger:        log,
		session:       sess,
		auth:          stores.NewAuthStore(client, log),
		invoices:      stores.NewInvoiceStore(client),
		payments:      stores.NewPaymentStore(client),
		fees:          stores.NewFeeStore(client),
		taxes:         stores.NewTaxStore(client),
		orgs:          stores.NewOrganizationStore(client, refCache),
		idConfigs:     stores.NewIdentityConfigStore(client),
		users:         stores.NewUserStore(client),
		notifications: stores.NewNotificationStore(client),
		activities:    stores.NewActivityStore(client),
		dashboard:     stores.NewDashboardStore(client, refCache),
	}

	if err := newApp(deps).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}
