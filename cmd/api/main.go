package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stockscreen/db"
	"stockscreen/internal/handler"
	"stockscreen/internal/intent"
	"stockscreen/internal/repository"
	"stockscreen/pkg/llm"
	"stockscreen/pkg/market"
	"stockscreen/pkg/screener"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var chatClient llm.ChatClient
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		client := llm.NewAnthropicClient(key)
		slog.Info("using anthropic chat client", "model", client.ModelName())
		chatClient = client
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client := llm.NewOpenAIClient(key)
		slog.Info("using openai chat client", "model", client.ModelName())
		chatClient = client
	} else {
		log.Fatalf("no model API key configured, set ANTHROPIC_API_KEY or OPENAI_API_KEY")
	}

	extractor := intent.NewExtractor(chatClient)

	var store handler.QueryStore
	if os.Getenv("DATABASE_URL") != "" {
		err := db.Connect()
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		store = repository.NewQueryRepository(db.DB)
	} else {
		slog.Warn("DATABASE_URL not set, query history disabled")
	}

	var cache handler.IntentCache
	if os.Getenv("REDIS_URL") != "" {
		err := db.ConnectRedis()
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		cache = db.NewIntentCache(db.Redis, db.IntentCacheTTL)
	} else {
		slog.Warn("REDIS_URL not set, intent cache disabled")
	}

	var marketData handler.MarketData
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		client := market.NewFinnhubClient(key)
		slog.Info("ticker snapshots enabled", "source", client.Name())
		marketData = client
	} else {
		slog.Warn("FINNHUB_API_KEY not set, ticker snapshots disabled")
	}

	var screenerClient handler.ScreenerClient
	if url := os.Getenv("SCREENER_URL"); url != "" {
		screenerClient = screener.NewClient(url)
	} else {
		slog.Warn("SCREENER_URL not set, screen results disabled")
	}

	intentHandler := handler.NewIntentHandler(extractor, store, cache, marketData, screenerClient)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/intent", intentHandler.ResolveIntent)
	r.POST("/query", intentHandler.HandleQuery)
	r.GET("/history", intentHandler.GetHistory)
	r.GET("/health", intentHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
