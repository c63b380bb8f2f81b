// Command seqguard-server provides a REST API for sequence risk
// screening.
//
// Usage:
//
//	seqguard-server [options]
//
// Options:
//
//	-port          Port to listen on (default: 8080)
//	-host          Host to bind to (default: localhost)
//	-codon-table   YAML codon usage table (default: built-in human)
//	-thresholds    YAML classifier thresholds (default: built-in)
//	-no-check-gc   Disable the GC-content homology override
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seqguard/seqguard-go/api/handlers"
	"github.com/seqguard/seqguard-go/api/middleware"
	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	tablePath := flag.String("codon-table", "", "YAML codon usage table (default: built-in human)")
	thresholdsPath := flag.String("thresholds", "", "YAML classifier thresholds (default: built-in)")
	noCheckGC := flag.Bool("no-check-gc", false, "Disable the GC-content homology override")
	flag.Parse()

	opts := seqguard.DefaultOptions()
	opts.CheckGC = !*noCheckGC

	if *thresholdsPath != "" {
		thresholds, err := seqguard.LoadClassifierOptions(*thresholdsPath)
		if err != nil {
			slog.Error("failed to load classifier thresholds", "path", *thresholdsPath, "error", err)
			os.Exit(1)
		}
		opts.Classifier = thresholds
		slog.Info("loaded classifier thresholds", "path", *thresholdsPath)
	}

	if *tablePath != "" {
		table, err := seqguard.LoadCodonTable(*tablePath)
		if err != nil {
			slog.Error("failed to load codon table", "path", *tablePath, "error", err)
			os.Exit(1)
		}
		opts.Table = table
		slog.Info("loaded codon usage table", "path", *tablePath, "host", table.Host())
	}

	api := handlers.New(opts)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check and metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/screen", api.Screen)

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/gc-content", api.GCContent)
			r.Post("/composition", api.Composition)
			r.Post("/validate", api.Validate)
		})

		r.Post("/cai", api.CAI)
		r.Post("/homology/classify", api.Classify)
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("could not gracefully shut down", "error", err)
			os.Exit(1)
		}
		close(done)
	}()

	slog.Info("seqguard API server starting", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("could not listen", "addr", addr, "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("server stopped")
}
