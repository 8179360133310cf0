package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bdm-tracker-api/config"
	"bdm-tracker-api/internal/auth"
	"bdm-tracker-api/internal/chat"
	"bdm-tracker-api/internal/household"
	"bdm-tracker-api/internal/logs"
	"bdm-tracker-api/internal/lookup"
	"bdm-tracker-api/internal/master"
	"bdm-tracker-api/internal/updates"
)

func openDB(cfg config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func main() {
	cfg := config.LoadConfig()

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&logs.SystemLog{},
		&household.Member{},
		&household.ImportBatch{},
		&master.Record{},
		&updates.UpdateRecord{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	userService := &auth.AuthService{DB: db, CFG: &cfg}
	auth.RegisterRoutes(r, userService, logService)

	householdStore := &household.Store{DB: db}
	importService := household.NewImportService(householdStore, logService, cfg.BucketName)
	household.RegisterRoutes(r, importService, householdStore, logService, cfg.BucketName)

	masterService := master.NewMasterService(db)
	master.RegisterRoutes(r, masterService, logService)

	lookupService := lookup.NewLookupService(householdStore, masterService)
	lookup.RegisterRoutes(r, lookupService)

	updateService := updates.NewUpdateService(db)
	updates.RegisterRoutes(r, updateService, logService)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  cfg.GeminiKey,
	})
	if err != nil {
		log.Printf("Gemini client unavailable, chat disabled: %v", err)
	} else {
		chatService := &chat.ChatService{DB: db, APIKey: cfg.GeminiKey, Client: client}
		chat.RegisterRoutes(r, chatService)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
