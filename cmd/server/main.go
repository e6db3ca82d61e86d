package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"example.com/candle-analytics/internal/config"
	"example.com/candle-analytics/internal/httpapi"
	"example.com/candle-analytics/internal/pattern"
)

func main() {
	configPath := flag.String("config", "", "")
	addr := flag.String("addr", "", "")
	corsOrigins := flag.String("cors-origins", "", "")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	// Flags override file and environment values.
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *corsOrigins != "" {
		cfg.Server.CORSOrigins = config.ParseOrigins(*corsOrigins)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validate error: %v", err)
	}

	log.Printf("config: addr=%s cors_origins=%s", cfg.Server.Addr, strings.Join(cfg.Server.CORSOrigins, ","))
	log.Printf("config: max_klines=%d max_points=%d", cfg.Limits.MaxKlines, cfg.Limits.MaxPoints)

	engine := pattern.NewEngine()

	api := httpapi.New(engine, cfg.Server.CORSOrigins)
	api.MaxKlines = cfg.Limits.MaxKlines
	api.MaxPoints = cfg.Limits.MaxPoints
	api.Metrics = httpapi.NewMetrics()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()

	log.Printf("http listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("http server error: %v", err)
	}
}
