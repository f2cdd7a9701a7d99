package main

import (
	"context"
	"os"
	"time"

	"mealslot/internal/catalog"
	"mealslot/internal/db"
	"mealslot/internal/history"
	"mealslot/internal/logger"
	"mealslot/internal/party"
	"mealslot/internal/realtime"
	"mealslot/internal/recipe"
	"mealslot/internal/router"
	"mealslot/internal/spin"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if err := logger.Init(os.Getenv("APP_ENV") != "production"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// ───────────────────────── STORAGE ─────────────────────────
	// DATABASE_URL is optional: without it the built-in catalog and an
	// in-memory audit log are used.
	var (
		catalogRepo catalog.Repository
		historyRepo history.Repository
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool := db.ConnectPostgres(dsn)
		defer pool.Close()

		pgCatalog := catalog.NewPostgresRepository(pool)
		if err := pgCatalog.EnsureSeed(context.Background()); err != nil {
			logger.Fatal("catalog seed failed", zap.Error(err))
		}
		catalogRepo = pgCatalog
		historyRepo = history.NewPostgresRepository(pool)
	} else {
		logger.Info("DATABASE_URL not set, using in-memory catalog")
		catalogRepo = catalog.NewInMemoryRepository(nil)
		historyRepo = history.NewInMemoryRepository(0)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	spinService := spin.NewService(catalogRepo, historyRepo)

	hub := realtime.NewHub()

	partyRegistry := party.NewRegistry()
	partyService := party.NewService(partyRegistry, spinService, hub)
	hub.SetDisconnectHandler(partyService.Disconnect)

	recipeService := recipe.NewService()

	// ───────────────────────── HANDLERS ─────────────────────────
	spinHandler := spin.NewHandler(spinService)
	partyHandler := party.NewHandler(partyService)
	recipeHandler := recipe.NewHandler(recipeService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.New(r, router.Deps{
		Spin:    spinHandler,
		Party:   partyHandler,
		Recipe:  recipeHandler,
		Catalog: catalogRepo,
		Hub:     hub,
	})

	// ───────────────────────── BACKGROUND ─────────────────────────
	go hub.Run()
	partyService.StartSweeper(context.Background())

	// ───────────────────────── START ─────────────────────────
	logger.Info("API running", zap.String("addr", ":"+port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
