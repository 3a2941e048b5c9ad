package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rag3karn/HOF-Scheduler/internal/config"
	"github.com/Rag3karn/HOF-Scheduler/internal/schedule"
	"github.com/Rag3karn/HOF-Scheduler/internal/server"
	"github.com/Rag3karn/HOF-Scheduler/internal/sheets"
	"github.com/Rag3karn/HOF-Scheduler/internal/tgbot"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// a nil *sheets.Client must not end up inside the interface
	var sheetLoader schedule.SheetLoader
	if cfg.SheetsEnabled() {
		sheetsClient, err := sheets.New(ctx, cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
		if err != nil {
			log.Fatalf("sheets: %v", err)
		}
		sheetLoader = sheetsClient
		log.Printf("google sheet source: %s", cfg.SheetRange)
	}

	var httpSrv *http.Server
	if cfg.HTTPEnabled() {
		httpSrv = server.New(cfg, sheetLoader)
		go func() {
			log.Printf("HTTP listening on %s", cfg.HTTPAddr)
			if sheetLoader != nil {
				log.Printf("sheet announcement link: %s", server.SheetLink(cfg))
			}
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("http server: %v", err)
			}
		}()
	}

	if cfg.BotEnabled() {
		botApp, err := tgbot.New(cfg, sheetLoader)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		go func() {
			if err := botApp.Run(ctx); err != nil && err != context.Canceled {
				log.Printf("bot stopped: %v", err)
				cancel()
			}
		}()
	}

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down...")

	cancel()
	if httpSrv != nil {
		ctxTimeout, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel2()
		_ = httpSrv.Shutdown(ctxTimeout)
	}

	log.Println("bye")
}
