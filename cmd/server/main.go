package main

import (
	"context"
	"log"
	"runtime"
	"time"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/config"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/domain/fiber/handler"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/middleware"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/model"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/repository"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/service"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/usecase"
	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: util.ErrorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	authConfig := config.LoadAuthConfig()
	if authConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not configured")
	}

	db := ConnectDB()

	reportRepo := repository.NewReportRepository(db)
	invoker := buildInvoker(ctx)
	uc := usecase.NewReportUsecase(reportRepo, invoker)
	h := handler.NewReportHandler(uc)

	h.RegisterRoutes(app, middleware.Auth(authConfig.JWTSecret))

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func buildInvoker(ctx context.Context) service.ModelInvoker {
	aiConfig := config.LoadAIConfig()
	if aiConfig.APIKey == "" {
		log.Fatal("AI_API_KEY is not configured")
	}

	switch aiConfig.Provider {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx, aiConfig)
		if err != nil {
			log.Fatal(err)
		}
		return gemini
	case "gateway":
		return service.NewAIGatewayService(aiConfig)
	default:
		log.Fatalf("unsupported AI provider: %s", aiConfig.Provider)
		return nil
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Report{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
