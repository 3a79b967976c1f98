package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"dressrent-backend/internal/config"
	"dressrent-backend/internal/jobs"
	"dressrent-backend/internal/logger"
	"dressrent-backend/internal/repository/postgres"
	"dressrent-backend/internal/scheduler"
	"dressrent-backend/internal/service"
)

// Standalone job runner. Only useful with the postgres store: the memory
// store's state lives inside the server process and is not reachable from a
// second binary.
func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'overdue-digest', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cronjob runner...", "log_level", cfg.Log.Level)

	if cfg.Store.Type != "postgres" {
		log.Fatalf("The cronjob runner requires store.type: postgres, got %q", cfg.Store.Type)
	}

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.From, cfg.Email.FromName)
	inventorySvc := service.NewInventoryService(store.ItemRepository, store.RentalRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.RentalRepository)
	reportSvc := service.NewReportService(store.ItemRepository, store.CustomerRepository, store.RentalRepository)

	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Email:     emailSvc,
		Reports:   reportSvc,
		Inventory: inventorySvc,
		Customers: customerSvc,
	}, cfg)

	// One-shot mode
	if *runOnce != "" {
		switch *runOnce {
		case "overdue-digest":
			jobRunner.SendOverdueDigest()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("One-shot job finished", "job", *runOnce)
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
