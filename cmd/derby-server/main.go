// Package main is the entry point for the PrivateDerby game server.
// It only handles dependency injection and server initialization.
// NO business logic belongs here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Future-R/PrivateDerby/internal/engine"
	"github.com/Future-R/PrivateDerby/internal/infra/storage"
	"github.com/Future-R/PrivateDerby/internal/journal"
	"github.com/Future-R/PrivateDerby/internal/network"
	"github.com/Future-R/PrivateDerby/internal/platform/logger"
	"github.com/Future-R/PrivateDerby/internal/platform/metrics"
	"github.com/Future-R/PrivateDerby/internal/world"
)

// SQLitePersisterAdapter translates journal entries to storage records.
type SQLitePersisterAdapter struct {
	repo      *storage.SQLiteJournalRepository
	sessionID string
}

func (a *SQLitePersisterAdapter) Append(entry journal.Entry) error {
	start := time.Now()
	err := a.repo.Append(context.Background(), storage.JournalEntry{
		ID:        entry.ID,
		SessionID: a.sessionID,
		Text:      entry.Text,
		Type:      string(entry.Type),
		GameClock: entry.Timestamp,
		CreatedAt: time.Now(),
	})
	metrics.Get().RecordEntryWrite(time.Since(start), err)
	return err
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "derby.db", "SQLite journal database path")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	log.Println("[DERBY-SERVER] Initializing PrivateDerby authoritative server...")

	appLogger := logger.NewLogger()

	appLogger.Info("Initializing SQLite journal '" + *dbPath + "'...")
	db, err := storage.InitSQLite(*dbPath)
	if err != nil {
		appLogger.Error("Failed to initialize SQLite: " + err.Error())
		os.Exit(1)
	}
	defer db.Close()

	journalRepo := storage.NewSQLiteJournalRepository(db)
	persister := &SQLitePersisterAdapter{
		repo:      journalRepo,
		sessionID: uuid.NewString(),
	}

	appLogger.Info("Loading campus configuration...")
	campus := world.Default()

	appLogger.Info("Bootstrapping Engine...")
	gameEngine := engine.NewEngine(campus, appLogger)
	gameEngine.SetPersister(persister)
	if *seed != 0 {
		gameEngine.Reseed(*seed)
	}

	session := network.NewSession(gameEngine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger.Info("Bootstrapping WebSocket Hub...")
	hub := network.NewHub(session, appLogger)
	go hub.Run(ctx)

	// Setup API routes
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r, appLogger)
	})

	http.HandleFunc("/api/state", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session.Snapshot())
	})

	http.HandleFunc("/api/actions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session.Actions())
	})

	http.HandleFunc("/api/dispatch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		type requestParams struct {
			ActionID string `json:"action_id"`
		}
		var req requestParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		snap, err := session.Dispatch(req.ActionID)
		if err != nil {
			// The id was not in the current catalog; stale UI most likely.
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		hub.BroadcastState()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
	})

	http.HandleFunc("/metrics", metrics.Handler())
	http.HandleFunc("/metrics/prometheus", metrics.PrometheusHandler())

	go func() {
		log.Printf("[DERBY-SERVER] HTTP API & WS server listening on %s", *addr)
		if err := http.ListenAndServe(*addr, nil); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Println("[DERBY-SERVER] Server running. Press Ctrl+C to exit.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[DERBY-SERVER] Shutting down...")
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow cross-origin requests from the dev frontend
	},
}

// serveWs handles websocket requests from the peer.
func serveWs(hub *network.Hub, w http.ResponseWriter, r *http.Request, log *logger.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade websocket connection")
		return
	}

	client := network.NewClient(hub, conn)
	client.Register()

	go client.WritePump()
	go client.ReadPump()
}
