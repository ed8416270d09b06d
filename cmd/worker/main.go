package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	zlog "github.com/rs/zerolog/log"

	"library-backend/internal/config"
	"library-backend/internal/domains/borrowing"
	"library-backend/internal/infrastructure/filestore"
	"library-backend/pkg/logger"
)

// The worker runs alongside the API and periodically logs a lending
// summary: how many copies are out and which borrowings are overdue.
// It only reads the borrowings file; all writes stay with the API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	logger.Init(getEnv("APP_ENV", "development"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	schedule := getEnv("OVERDUE_REPORT_CRON", "0 * * * *")

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { reportOverdue(cfg) }); err != nil {
		log.Fatalf("❌ Invalid OVERDUE_REPORT_CRON %q: %v", schedule, err)
	}

	log.Printf("🚀 Overdue report worker starting (schedule %q)", schedule)
	c.Start()

	// Emit one report at startup so a fresh deployment is not silent
	// until the first tick.
	reportOverdue(cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down worker...")
	<-c.Stop().Done()
	log.Println("✅ Worker exited gracefully")
}

// reportOverdue reopens the borrowings collection to see the API's
// latest committed state, then logs the summary.
func reportOverdue(cfg *config.Config) {
	borrowings, err := filestore.Open[borrowing.Borrowing](cfg.BorrowingsPath())
	if err != nil {
		zlog.Error().Err(err).Msg("Overdue report: failed to open borrowings collection")
		return
	}

	today := time.Now().Format(borrowing.DateLayout)

	records := borrowings.Snapshot()
	active := 0
	overdue := make([]int, 0)
	for _, rec := range records {
		if rec.Status == borrowing.StatusBorrowed {
			active++
		}
		if rec.OverdueAt(today) {
			overdue = append(overdue, rec.ID)
		}
	}

	event := zlog.Info()
	if len(overdue) > 0 {
		event = zlog.Warn().Ints("overdue_ids", overdue)
	}
	event.
		Int("total", len(records)).
		Int("active", active).
		Int("overdue", len(overdue)).
		Str("as_of", today).
		Msg("Lending summary")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
