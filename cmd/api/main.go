package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/db"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/favorites"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/geo"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/history"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/llm"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/middleware"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/nearby"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/pairing"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/session"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/share"
	"github.com/31stmarketingmedia/Pocket-Sommelier/internal/speech"
)

const (
	sessionTTL    = 30 * time.Minute
	sweepInterval = 15 * time.Minute
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"GEMINI_API_KEY",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.ClientIDHeader},
		ExposeHeaders:    []string{middleware.ClientIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.ClientID())

	// ───────────────────────── LLM ─────────────────────────
	llmClient := llm.NewGeminiClient()

	// ───────────────────────── STORAGE ─────────────────────────
	var uploader share.Uploader
	if share.R2Configured() {
		r2Client, err := share.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		log.Println("ℹ️ R2 not configured, share links fall back to clipboard")
	}

	// ───────────────────────── OPTIONAL CAPABILITIES ─────────────────────────
	var transcriber speech.Transcriber
	deepgram := speech.NewDeepgramTranscriber()
	if deepgram.Available() {
		transcriber = deepgram
	} else {
		log.Println("ℹ️ DEEPGRAM_API_KEY not set, voice input disabled")
	}

	resolver := geo.NewResolver()
	if !resolver.Available() {
		log.Println("ℹ️ GEOCODER_API_KEY not set, address fallback disabled")
	}

	// ───────────────────────── REPOS ─────────────────────────
	favRepo := favorites.NewPostgresRepository(pgDB)
	histRepo := history.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	favService := favorites.NewService(favRepo)
	histService := history.NewService(histRepo)
	pairingService := pairing.NewService(llmClient)
	nearbyService := nearby.NewService(llmClient)
	shareService := share.NewService(uploader)

	sessions := session.NewManager(favService, histService, sessionTTL)
	sessions.StartSweeper(sweepInterval)

	controller := session.NewController(
		sessions,
		pairingService,
		nearbyService,
		favService,
		histService,
		resolver,
		transcriber,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	sessionHandler := session.NewHandler(controller)
	shareHandler := share.NewHandler(shareService)

	// ───────────────────────── SESSION ROUTES ─────────────────────────
	sessionGroup := r.Group("/session")
	{
		sessionGroup.GET("", sessionHandler.GetState)
		sessionGroup.POST("/search", sessionHandler.Search)
		sessionGroup.POST("/voice", sessionHandler.Voice)
		sessionGroup.POST("/location", sessionHandler.ReportLocation)
		sessionGroup.POST("/nearby", sessionHandler.FindNearby)
		sessionGroup.POST("/tab", sessionHandler.SetTab)
		sessionGroup.GET("/history", sessionHandler.GetHistory)
		sessionGroup.DELETE("/history", sessionHandler.ClearHistory)
	}

	// ───────────────────────── FAVORITES ROUTES ─────────────────────────
	favGroup := r.Group("/favorites")
	{
		favGroup.GET("", sessionHandler.GetFavorites)
		favGroup.POST("/toggle", sessionHandler.ToggleFavorite)
	}

	// ───────────────────────── SHARE ROUTES ─────────────────────────
	r.POST("/share", shareHandler.Share)
	r.GET("/vendors", shareHandler.Vendors)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	r.Run(":" + port)
}
