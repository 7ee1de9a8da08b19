package main

import (
	"fmt"
	"net/http"
	"os"

	"ledgerbook/internal/config"
	"ledgerbook/internal/database"
	"ledgerbook/internal/handlers"
	"ledgerbook/internal/logger"
	"ledgerbook/internal/middleware"
	"ledgerbook/internal/services"
	"ledgerbook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ledgerbook/internal/docs" // Import swagger docs
)

// @title           Ledgerbook API
// @version         1.0
// @description     Ledgerbook is a small double-entry bookkeeping service: it records balanced journal entries against a chart of accounts, derives per-account ledgers, and computes period income statements with a COGS block.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Bring the schema up to date for the configured adapter
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	journalService := services.NewJournalService(db)
	ledgerService := services.NewLedgerService(db, accountService)
	reportService := services.NewReportService(db)

	// Seed the default chart of accounts so entries can be recorded
	// immediately without setup
	if err := accountService.SeedDefaultAccounts(); err != nil {
		return fmt.Errorf("failed to seed default accounts: %w", err)
	}

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	journalHandler := handlers.NewJournalHandler(journalService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Chart of accounts
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)

	// Journal entries
	journal := v1.Group("/journal-entries")
	journal.POST("", journalHandler.CreateJournalEntry)
	journal.GET("", journalHandler.GetJournalEntries)
	journal.GET("/:id", journalHandler.GetJournalEntryByID)

	// Derived ledger views
	ledger := v1.Group("/ledger")
	ledger.GET("", ledgerHandler.GetLedgerAccounts)
	ledger.GET("/:id", ledgerHandler.GetLedgerAccountByID)

	// Period reports
	v1.GET("/income-statement", reportHandler.GetIncomeStatement)
	v1.POST("/income-statement/inventory", reportHandler.GetIncomeStatementWithInventory)

	log.Infof("Starting Ledgerbook server on port %s (driver: %s)", appConfig.Port, appConfig.DBDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
