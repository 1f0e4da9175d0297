package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joelkehle/startup-navigator/internal/config"
	"github.com/joelkehle/startup-navigator/internal/httpapi"
	"github.com/joelkehle/startup-navigator/internal/ideaanalysis"
	"github.com/joelkehle/startup-navigator/internal/render"
	"github.com/joelkehle/startup-navigator/internal/telemetry"
)

func main() {
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before reading the environment")
	addrFlag := flag.String("addr", "", "Listen address (overrides NAVIGATOR_ADDR)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "startup-navigator", cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Fatalf("setup tracing: %v", err)
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	opts := httpapi.Options{
		Analyze:         ideaanalysis.Analyze,
		AnalysisTimeout: cfg.AnalysisTimeout,
	}
	if cfg.PDFEnabled {
		opts.PDFRenderer = render.NewChromiumPDFRenderer(cfg.WebDir, cfg.ChromePath)
	}
	handler := httpapi.NewServer(opts)

	log.Printf("startup-navigator listening on %s (pdf=%t, analysis_timeout=%s)", cfg.Addr, cfg.PDFEnabled, cfg.AnalysisTimeout)
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		_ = srv.Shutdown(sctx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Println("startup-navigator stopped")
}
