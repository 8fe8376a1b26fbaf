package main

import (
	"Quina/config"
	_ "Quina/config/swagger"
	"Quina/middleware"
	"Quina/routes"
	"Quina/services/game"
	"Quina/services/redis"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Quina API
// @version 1.0
// @description Gin-Gonic server for the "Quina" multiplayer bingo API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	// Redis is optional: without it the engine just skips the live-draw cache
	var redisClient *redis.RedisClient
	if rc, err := config.Connect_redis(); err == nil {
		redisClient = rc
		defer redis.CloseRedis(redisClient)
	} else {
		log.Printf("Warning: running without Redis: %v", err)
	}

	svc := game.NewService(gormDB, redisClient)

	r := gin.Default()
	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, gormDB, svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
