package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "dressrent-backend/internal/api/http"
	"dressrent-backend/internal/config"
	"dressrent-backend/internal/jobs"
	"dressrent-backend/internal/logger"
	"dressrent-backend/internal/repository"
	"dressrent-backend/internal/repository/memory"
	"dressrent-backend/internal/repository/postgres"
	"dressrent-backend/internal/scheduler"
	"dressrent-backend/internal/security"
	"dressrent-backend/internal/service"
)

type store struct {
	Items     repository.ItemRepository
	Customers repository.CustomerRepository
	Rentals   repository.RentalRepository
	Resetter  repository.Resetter
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental shop backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "store", cfg.Store.Type)

	st := openStore(cfg)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Admin.TokenSecret, time.Duration(cfg.Admin.TokenExpiryMinutes)*time.Minute)

	// Initialize Services
	inventorySvc := service.NewInventoryService(st.Items, st.Rentals)
	customerSvc := service.NewCustomerService(st.Customers, st.Rentals)
	rentalSvc := service.NewRentalService(st.Rentals, st.Items, st.Customers)
	reportSvc := service.NewReportService(st.Items, st.Customers, st.Rentals)
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.From, cfg.Email.FromName)
	adminSvc := service.NewAdminService(st.Resetter, tokenManager, cfg.Admin.PasswordHash)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Email:     emailSvc,
		Reports:   reportSvc,
		Inventory: inventorySvc,
		Customers: customerSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP API
	router := httpapi.NewRouter(httpapi.Services{
		Inventory: inventorySvc,
		Customers: customerSvc,
		Rentals:   rentalSvc,
		Reports:   reportSvc,
		Admin:     adminSvc,
		Tokens:    tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

func openStore(cfg *config.Config) store {
	switch cfg.Store.Type {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")
		pg := postgres.NewStore(db)
		return store{
			Items:     pg.ItemRepository,
			Customers: pg.CustomerRepository,
			Rentals:   pg.RentalRepository,
			Resetter:  pg,
		}
	default:
		mem := memory.NewStore()
		if cfg.Store.SeedDemo {
			if err := memory.SeedDemoData(mem); err != nil {
				log.Fatalf("Failed to seed demo data: %v", err)
			}
			logger.Info("Demo data seeded")
		}
		return store{
			Items:     mem.ItemRepository,
			Customers: mem.CustomerRepository,
			Rentals:   mem.RentalRepository,
			Resetter:  mem,
		}
	}
}
