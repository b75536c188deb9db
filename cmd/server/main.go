package main

import (
	"context"
	"fmt"
	"os"

	"github.com/phantomplay/backend/internal/ai"
	"github.com/phantomplay/backend/internal/chat"
	"github.com/phantomplay/backend/internal/config"
	"github.com/phantomplay/backend/internal/db"
	"github.com/phantomplay/backend/internal/history"
	"github.com/phantomplay/backend/internal/httpapi"
	"github.com/phantomplay/backend/internal/httpapi/handlers"
	"github.com/phantomplay/backend/internal/logger"
	"github.com/phantomplay/backend/internal/users"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	userDB, err := db.Open(cfg.UserDBPath)
	if err != nil {
		log.Error("open user db", "error", err)
		os.Exit(1)
	}
	if err := userDB.AutoMigrate(&users.User{}); err != nil {
		log.Error("migrate user db", "error", err)
		os.Exit(1)
	}

	chatDB, err := db.Open(cfg.ChatDBPath)
	if err != nil {
		log.Error("open chat db", "error", err)
		os.Exit(1)
	}
	if err := chatDB.AutoMigrate(&history.ChatMessage{}); err != nil {
		log.Error("migrate chat db", "error", err)
		os.Exit(1)
	}

	reg := ai.Registry{}
	reg.Register("gemini", func(ctx context.Context, model string) (ai.Provider, error) {
		if model == "" {
			model = cfg.GeminiModel
		}
		return ai.NewGeminiProvider(ctx, cfg.GeminiAPIKey, model)
	})
	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		if model == "" {
			model = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, model), nil
	})

	provider, err := reg.Build(context.Background(), cfg.AIProvider, "")
	if err != nil {
		log.Error("ai provider", "error", err)
		os.Exit(1)
	}

	chatSvc := chat.NewService(provider, log)
	userRepo := users.NewRepo(userDB, log)
	guests := history.NewMemoryStore(cfg.GuestSessionLimit, cfg.GuestSessionTTL)
	durable := history.NewSQLStore(chatDB)

	h := handlers.New(userRepo, guests, durable, chatSvc, log)
	router := httpapi.NewRouter(h, cfg, log)

	log.Info("server starting", "port", cfg.Port, "provider", cfg.AIProvider)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
