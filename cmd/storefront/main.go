package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"StoreFront/internal/api"
	"StoreFront/internal/auth"
	"StoreFront/internal/cart"
	"StoreFront/internal/catalog"
	"StoreFront/internal/config"
	"StoreFront/pkg/kit"
)

const (
	service = "storefront"

	demoCatalogSize = 100
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	products := catalog.NewMemStore(seedProducts(cfg.CatalogSeed)...)

	deps := api.Deps{
		Catalog: products,
		Carts: &cart.Service{
			Store:    cart.NewMemStore(),
			Products: products,
			Locker:   newLocker(cfg.CartLocking),
			Metrics:  cart.NewMetrics(reg),
		},
		Users:         auth.NewMemStore(),
		DefaultUserID: cfg.DefaultUserID,
	}
	if cfg.AuthRateLimit > 0 {
		deps.AuthLimiter = kit.NewIPRateLimiter(cfg.AuthRateLimit, time.Minute)
	}

	h := api.NewHandler(deps, api.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		CORSOrigins:    cfg.CORSAllowedOrigins,
	})

	log.Info("starting",
		zap.Int("products", products.Len()),
		zap.String("catalog_seed", string(cfg.CatalogSeed)),
		zap.String("cart_locking", string(cfg.CartLocking)),
		zap.String("default_user_id", cfg.DefaultUserID),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := kit.RunHTTPServer(ctx, cfg.Addr(), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func seedProducts(seed config.CatalogSeed) []catalog.Product {
	if seed == config.CatalogSeedDemo {
		return catalog.DemoProducts(demoCatalogSize)
	}
	return catalog.SampleProducts()
}

func newLocker(policy config.CartLocking) cart.Locker {
	if policy == config.CartLockingPerUser {
		return cart.NewKeyedLocker()
	}
	return cart.NopLocker{}
}
