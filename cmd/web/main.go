package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"zerotable.kr/protein-web/internal/catalog"
	mw "zerotable.kr/protein-web/internal/middleware"
	"zerotable.kr/protein-web/internal/observability"
	"zerotable.kr/protein-web/internal/pricing"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() based on env: PROTEIN_WEB_DEV (preferred) or DEV (fallback)
	devMode bool

	// siteBase is the absolute origin used for canonical URLs and JSON-LD.
	siteBase = "https://zerotable.kr"

	products  *catalog.Catalog
	priceFeed *pricing.Client
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var (
		addr        string
		tmplPath    string
		pubPath     string
		pricingBase string
		baseURL     string
		productFile string
	)
	// Port resolution: prefer PROTEIN_WEB_PORT, then Cloud Run's PORT, else 8080
	port := os.Getenv("PROTEIN_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&pricingBase, "pricing-base", os.Getenv("PRICING_BASE_URL"), "price feed base URL (empty serves mock quotes)")
	flag.StringVar(&baseURL, "base-url", envOr("SITE_BASE_URL", siteBase), "absolute site origin for canonical URLs")
	flag.StringVar(&productFile, "products", os.Getenv("PRODUCTS_FILE"), "optional products YAML overriding the built-in catalog")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	siteBase = baseURL

	// Dev mode: prefer PROTEIN_WEB_DEV, fallback to DEV
	devMode = os.Getenv("PROTEIN_WEB_DEV") != "" || os.Getenv("DEV") != ""

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	if productFile != "" {
		products, err = catalog.LoadFile(productFile)
	} else {
		products, err = catalog.Load()
	}
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	priceFeed = pricing.NewClient(pricingBase)

	r := newRouter(logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", addr),
			zap.Bool("dev_mode", devMode),
			zap.Int("products", products.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("listen", zap.Error(err))
	case <-shutdown:
		logger.Info("shutdown signal received; draining requests")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}
}

func newRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(publicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/products", ProductsHandler)
	r.Post("/products/filters", ProductsApplyHandler)
	r.Get("/products/{id}", ProductDetailHandler)

	r.NotFound(NotFoundHandler)
	return r
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
