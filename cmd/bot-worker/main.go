// dreamitjob-bot-worker
//
// Telegram intake bot for the @DreamITJob channel: walks an employer through
// an 8-step vacancy form (industry → hashtags → grade → salary → description
// → contact → location → confirm), validates free-text answers against the
// channel content policy, suppresses identical resubmissions inside 24h, and
// forwards accepted drafts to the moderation chat.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/catalog"
	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/config"
	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/db"
	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/flow"
	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/scheduler"
	"github.com/ilyagolubev1986-web/dreamitjob-bot-worker/internal/telegram"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	if err := godotenv.Load(); err == nil {
		log.Println("[bot-worker] Loaded .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[bot-worker] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Catalog ──────────────────────────────────────────────────────────────
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("[bot-worker] Catalog: %v", err)
	}
	log.Printf("[bot-worker] Catalog loaded — %d industries", len(cat.Industries))

	// ── Dedup guard (redis when configured, in-memory otherwise) ────────────
	var guard flow.DedupGuard
	var janitor *scheduler.Janitor

	if cfg.RedisURL != "" {
		log.Println("[bot-worker] Connecting to Redis…")
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[bot-worker] Redis: %v", err)
		}
		defer rdb.Close()
		log.Println("[bot-worker] Redis connected ✓")
		guard = flow.NewRedisDedupGuard(rdb)
	} else {
		mem := flow.NewMemoryDedupGuard()
		guard = mem
		janitor = scheduler.New(mem, cfg.DedupSweepIntervalHours)
		if err := janitor.Start(); err != nil {
			log.Fatalf("[bot-worker] Janitor: %v", err)
		}
		defer janitor.Stop()
	}

	// ── Engine + transport ───────────────────────────────────────────────────
	client := telegram.NewClient(cfg.TelegramToken)
	notifier := telegram.NewNotifier(client, cfg.AdminChatID)
	store := flow.NewSessionStore()
	engine := flow.NewEngine(store, guard, notifier, cat)

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler(store))

	h := telegram.NewHandler(engine, client)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[bot-worker] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[bot-worker] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[bot-worker] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[bot-worker] Shutdown error: %v", err)
	}
	log.Println("[bot-worker] Stopped.")
}

func healthHandler(store *flow.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":          "ok",
			"service":         "bot-worker",
			"version":         version,
			"active_sessions": store.Len(),
		})
	}
}
