package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Shresth1822/split-expense/docs"
	"github.com/Shresth1822/split-expense/internal/balance"
	"github.com/Shresth1822/split-expense/internal/config"
	"github.com/Shresth1822/split-expense/internal/database"
	"github.com/Shresth1822/split-expense/internal/expense"
	expensesplit "github.com/Shresth1822/split-expense/internal/expense/split"
	"github.com/Shresth1822/split-expense/internal/friendship"
	"github.com/Shresth1822/split-expense/internal/group"
	"github.com/Shresth1822/split-expense/internal/notification"
	"github.com/Shresth1822/split-expense/internal/settlement"
	"github.com/Shresth1822/split-expense/internal/user"
	"github.com/Shresth1822/split-expense/pkg/logging"
	mw "github.com/Shresth1822/split-expense/pkg/middleware"
)

// @title        split-expense API
// @version      1.0
// @description  Split shared expenses with friends and track who owes whom.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to database and ran migrations")

	// Split strategy factory
	splitFactory := expensesplit.NewFactory()

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Friendship feature
	friendshipRepo := friendship.NewRepository(db)
	friendshipService := friendship.NewService(friendshipRepo, userRepo)
	friendshipHandler := friendship.NewHandler(friendshipService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Notification feature (record layer; push delivery lives elsewhere)
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Expense feature (split factory and notifier injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, splitFactory, notificationService)
	expenseHandler := expense.NewHandler(expenseService)

	// Balance feature (pure read-side aggregation)
	balanceRepo := balance.NewRepository(db)
	balanceService := balance.NewService(balanceRepo)
	balanceHandler := balance.NewHandler(balanceService)

	// Settlement feature (built on balances + expenses)
	settlementService := settlement.NewService(balanceService, expenseService)
	settlementHandler := settlement.NewHandler(settlementService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", mw.UserIDHeader},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RequireUser)

		r.Mount("/users", userHandler.Routes())
		r.Mount("/friends", friendshipHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/balances", balanceHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
