package main

import (
	"context"
	"fmt"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-pos/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/router"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant POS API
// @version 1.0
// @description Menu management, sales recording and sales analytics for a single restaurant
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	applyLogLevel(configuration.LogLevel)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database connection
	db := setupDatabase(configuration)

	// Optional Redis for rate limiting
	redisClient := setupRedis(configuration)

	engine := router.New(router.Options{
		DB:                 db,
		Logger:             log.StandardLogger(),
		CORSAllowedOrigins: configuration.CORSAllowedOrigins,
		Redis:              redisClient,
		RateLimitPerMinute: configuration.RateLimitPerMinute,
		EnableSwagger:      config.GetEnvAsType("SWAGGER_ENABLED", true),
	})

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(engine.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	log.SetLevel(level)
	services.SetLogLevel(level)
}

// applyLogLevel lets LOG_LEVEL override the environment default
func applyLogLevel(value string) {
	if value == "" {
		return
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		log.WithField("log_level", value).Warn("Ignoring unknown log level")
		return
	}
	log.SetLevel(level)
	services.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects, migrates and optionally seeds the database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	if !conf.SeedData {
		return db
	}
	seeded, err := database.Seed(db, demoMenu())
	checkPanicErr(err)
	if seeded {
		log.Info("Database seeded successfully")
	}
	return db
}

// demoMenu is the initial catalog written to an empty database
func demoMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Burger", Price: decimal.NewFromInt(150)},
		{Name: "Pizza", Price: decimal.NewFromInt(300)},
		{Name: "Fries", Price: decimal.NewFromInt(80)},
		{Name: "Iced Tea", Price: decimal.RequireFromString("45.50")},
	}
}

// setupRedis returns a connected client, or nil when rate limiting is not configured or Redis is unreachable
func setupRedis(conf *config.Config) *redis.Client {
	if conf.RedisAddr == "" || conf.RateLimitPerMinute == 0 {
		log.Info("Rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).WithField("addr", conf.RedisAddr).Warn("Redis unreachable, rate limiting disabled")
		_ = client.Close()
		return nil
	}

	log.WithField("addr", conf.RedisAddr).Info("Rate limiting enabled")
	return client
}
