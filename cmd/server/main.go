package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nosdarm/rpg-sub000/internal/cache"
	"github.com/Nosdarm/rpg-sub000/internal/db"
	"github.com/Nosdarm/rpg-sub000/internal/handlers"
	"github.com/Nosdarm/rpg-sub000/internal/logger"
	"github.com/Nosdarm/rpg-sub000/internal/repositories"
	"github.com/Nosdarm/rpg-sub000/internal/services"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zlog.Fatal("Database health check failed", zap.Error(err))
	}
	zlog.Info("Database connection established")

	// Optional read cache; the service degrades gracefully without it.
	redisCache := cache.New(os.Getenv("REDIS_ADDR"), zlog)

	// Wire repository, external boundaries and service. The generator
	// and persister are mock realizations of the external AI producer
	// and the game-data persistence service.
	repo := repositories.NewPendingGenerationRepository(database)
	generationService := services.NewGenerationService(
		repo,
		services.NewMockContentGenerator(),
		services.NewMockContentPersister(),
		redisCache,
	)
	generationHandler := handlers.NewGenerationHandler(generationService, zlog)

	// Routes
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "gm-console-backend",
		})
	})

	api := r.PathPrefix("/api/guilds/{guildID}").Subrouter()
	api.HandleFunc("/generations", generationHandler.HandleTrigger).Methods(http.MethodPost)
	api.HandleFunc("/generations", generationHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/generations/{id}", generationHandler.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/generations/{id}", generationHandler.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/generations/{id}/approve", generationHandler.HandleApprove).Methods(http.MethodPost)

	// CORS middleware for the browser console
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	zlog.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(r)); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
