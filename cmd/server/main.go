package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dinesh6383/Finance-tracking-App/internal/command"
	"github.com/dinesh6383/Finance-tracking-App/internal/config"
	"github.com/dinesh6383/Finance-tracking-App/internal/events"
	"github.com/dinesh6383/Finance-tracking-App/internal/handler"
	"github.com/dinesh6383/Finance-tracking-App/internal/identity"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/dinesh6383/Finance-tracking-App/internal/query"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
	redisclient "github.com/dinesh6383/Finance-tracking-App/internal/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Write store. Opened once for the whole process; migrations run on boot.
	db, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Read model store + event streaming.
	rdb, err := redisclient.NewClient(cfg.RedisAddr, "", cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	// --- CQRS wiring ---
	publisher := events.NewPublisher(rdb.Client)

	users := repository.NewUserRepository(db)
	accounts := repository.NewAccountRepository(db)
	transactions := repository.NewTransactionRepository(db)
	budgets := repository.NewBudgetRepository(db)
	views := repository.NewReadModelStore(rdb.Client, cfg.DashboardCacheTTL)

	accountCommands := command.NewAccountCommandService(accounts, views, publisher)
	transactionCommands := command.NewTransactionCommandService(transactions, views, publisher)
	budgetCommands := command.NewBudgetCommandService(budgets, publisher)

	accountQueries := query.NewAccountQueryService(accounts, transactions, views)
	budgetQueries := query.NewBudgetQueryService(budgets, transactions)
	dashboardQueries := query.NewDashboardQueryService(transactions, views)

	provider := identity.NewProviderClient(cfg.IdentityProviderURL, cfg.IdentityProviderKey)
	resolver := identity.NewResolver(users, provider, publisher)

	userHandler := handler.NewUserHandler(resolver)
	accountHandler := handler.NewAccountHandler(accountCommands, accountQueries, resolver)
	transactionHandler := handler.NewTransactionHandler(transactionCommands, resolver)
	budgetHandler := handler.NewBudgetHandler(budgetCommands, budgetQueries, resolver)
	dashboardHandler := handler.NewDashboardHandler(dashboardQueries, resolver)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1", middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
	{
		v1.GET("/me", userHandler.Me)

		v1.POST("/accounts", accountHandler.CreateAccount)
		v1.GET("/accounts", accountHandler.ListAccounts)
		v1.PATCH("/accounts/:accountId/default", accountHandler.SetDefaultAccount)
		v1.GET("/accounts/:accountId/transactions", accountHandler.GetAccountTransactions)

		v1.POST("/transactions/bulk-delete", transactionHandler.BulkDelete)

		v1.GET("/budget", budgetHandler.GetCurrentBudget)
		v1.PUT("/budget", budgetHandler.UpdateBudget)

		v1.GET("/dashboard", dashboardHandler.GetDashboardData)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Apply externally created transactions to the read models and keep
	// recurring schedules current.
	go func() {
		subscriber := events.NewSubscriber(rdb.Client, events.SubscriberConfig{
			Group:    "finance-tracker-group",
			Consumer: "finance-tracker-1",
			Stream:   events.TransactionEventsStream,
			Handler:  transactionCommands.HandleTransactionEvent,
		})
		if err := subscriber.Start(ctx); err != nil {
			slog.Error("subscriber stopped", "error", err)
		}
	}()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down")
		cancel()
	}()

	slog.Info("server starting", "addr", cfg.HTTPAddress())
	if err := router.Run(cfg.HTTPAddress()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
