package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"laneclash/internal/api"
	"laneclash/internal/catalog"
	"laneclash/internal/catalogio"
	"laneclash/internal/config"
	"laneclash/internal/engine"
	"laneclash/internal/match/runner"
	"laneclash/internal/matchmaking"
	"laneclash/internal/obslog"
)

func main() {
	if err := godotenv.Load("../.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("💡 No .env file found, using environment variables only")
		}
	} else {
		log.Println("✅ Loaded environment from ../.env")
	}

	log.Println("🃏 ================================")
	log.Println("🃏  LANECLASH - MATCH ENGINE")
	log.Println("🃏 ================================")

	appConfig := config.Load()
	obslog.Init()

	innerDiagnose := engine.Diagnose
	engine.Diagnose = func(reason string) {
		api.RecordInputDiscarded(reason)
		if innerDiagnose != nil {
			innerDiagnose(reason)
		}
	}
	runner.OnStep = func(d time.Duration, events int) {
		api.RecordTick(d)
		api.RecordEventsEmitted(events)
	}

	cat := loadCatalog(appConfig.Catalog.SourcePath)

	queue := matchmaking.New()
	matchRunner := runner.New(cat, int64(appConfig.Tick.IntervalMs), appConfig.Limits.MaxConcurrentMatches, appConfig.Limits.MaxQueuedInputs)

	sessions := api.NewSessionManager()
	server := api.NewServer(api.RunnerAdapter{Runner: matchRunner}, queue, sessions)

	port := appConfig.Server.Port
	addr := ":" + strconv.Itoa(port)

	go func() {
		log.Printf("🌐 API server on http://localhost%s", addr)
		if err := server.Start(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Println("✅ Server ready! Press Ctrl+C to stop.")
	<-quit

	log.Println("🛑 Shutting down...")
	server.Stop()
	log.Println("👋 Goodbye!")
}

// loadCatalog ingests the configured CSV source, falling back to an
// empty catalog (logged, not fatal) so a missing file never blocks
// startup — matchmaking will simply reject every deck until it exists.
func loadCatalog(path string) *catalog.Catalog {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("⚠️ catalog source %q not found, starting with an empty catalog: %v", path, err)
		return catalog.New(map[string]catalog.CardDefinition{})
	}
	defer f.Close()

	cards, diagnostics := catalogio.Load(f)
	obslog.CatalogLoaded(len(cards), diagnostics)
	return catalog.New(cards)
}
