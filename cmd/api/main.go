package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/foodtrack/foodtrack-server/internal/adapters/ai"
	"github.com/foodtrack/foodtrack-server/internal/adapters/bot"
	"github.com/foodtrack/foodtrack-server/internal/adapters/cache"
	adapterHTTP "github.com/foodtrack/foodtrack-server/internal/adapters/handler/http"
	"github.com/foodtrack/foodtrack-server/internal/adapters/repository"
	"github.com/foodtrack/foodtrack-server/internal/config"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
	"github.com/foodtrack/foodtrack-server/internal/core/workers"
)

func main() {
	startTime := time.Now()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("Critical: TELEGRAM_BOT_TOKEN is not set")
	}

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var userRepo domain.UserRepository = repository.NewPostgresUserRepository(db)
	foodRepo := repository.NewPostgresFoodLogRepository(db)
	waterRepo := repository.NewPostgresWaterLogRepository(db)
	weightRepo := repository.NewPostgresWeightLogRepository(db)
	checklistRepo := repository.NewPostgresChecklistRepository(db)
	measurementRepo := repository.NewPostgresMeasurementRepository(db)
	marathonRepo := repository.NewPostgresMarathonRepository(db)

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb, err = cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("Redis unavailable, running without cache: %v", err)
			rdb = nil
		} else {
			userRepo = repository.NewCachedUserRepository(userRepo, rdb)
			log.Println("Redis connected, profile cache enabled.")
		}
	}

	aiClient := ai.NewClient(cfg.OpenAIAPIKey)

	profileService := services.NewProfileService(userRepo)
	analysisService := services.NewAnalysisService(aiClient)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTDuration, userRepo)
	authService := services.NewAuthService(cfg.TelegramBotToken, profileService, tokenService)
	statsService := services.NewStatsService(userRepo, foodRepo, waterRepo, weightRepo)
	disciplineService := services.NewDisciplineService(userRepo, foodRepo, waterRepo, weightRepo, checklistRepo)
	trackerService := services.NewTrackerService(userRepo, waterRepo, weightRepo)
	chatService := services.NewChatService(userRepo, foodRepo, aiClient)
	measurementService := services.NewMeasurementService(measurementRepo)
	marathonService := services.NewMarathonService(marathonRepo, userRepo)

	tgBot, err := bot.New(cfg.TelegramBotToken, profileService, analysisService, nil)
	if err != nil {
		log.Fatalf("Critical: Failed to start telegram bot: %v", err)
	}

	foodService := services.NewFoodService(foodRepo, userRepo, tgBot)
	tgBot.SetFoodService(foodService)

	go tgBot.Start()
	defer tgBot.Stop()

	sweeper := workers.NewSweeper(userRepo, foodRepo, tgBot, cfg.WebAppURL)
	scheduler := cron.New()
	if err := sweeper.Schedule(scheduler); err != nil {
		log.Fatalf("Critical: Failed to schedule sweeps: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:        adapterHTTP.NewAuthHandler(authService),
		ProfileHandler:     adapterHTTP.NewProfileHandler(profileService),
		FoodHandler:        adapterHTTP.NewFoodHandler(foodService, analysisService),
		TrackerHandler:     adapterHTTP.NewTrackerHandler(trackerService),
		StatsHandler:       adapterHTTP.NewStatsHandler(statsService, disciplineService),
		ChatHandler:        adapterHTTP.NewChatHandler(chatService),
		MarathonHandler:    adapterHTTP.NewMarathonHandler(marathonService),
		MeasurementHandler: adapterHTTP.NewMeasurementHandler(measurementService),
		TokenService:       tokenService,
		DB:                 db,
		Redis:              rdb,
		StartTime:          startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("FoodTrack server running on http://localhost:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
