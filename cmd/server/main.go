package main

import (
	"log"

	"github.com/joanvup/MUN-Snack-Manager/internal/config"
	"github.com/joanvup/MUN-Snack-Manager/internal/database"
	"github.com/joanvup/MUN-Snack-Manager/internal/handlers"
	"github.com/joanvup/MUN-Snack-Manager/internal/middleware"
	"github.com/joanvup/MUN-Snack-Manager/internal/services"

	_ "github.com/joanvup/MUN-Snack-Manager/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           MUN Snack Manager API
// @version         1.0
// @description     Meal voucher redemption backend for MUN conference events
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db, cfg)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	configService := services.NewEventConfigService(db)
	participantService := services.NewParticipantService(db, configService)
	redemptionService := services.NewRedemptionService(
		db, configService, services.NewCooldownPolicy(), services.NewSystemClock(),
	)

	authHandler := handlers.NewAuthHandler(authService)
	scanHandler := handlers.NewScanHandler(redemptionService)
	participantHandler := handlers.NewParticipantHandler(participantService)
	configHandler := handlers.NewEventConfigHandler(configService)
	redemptionHandler := handlers.NewRedemptionHandler(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		scan := api.Group("/scan")
		scan.Use(middleware.JWTAuth(authService))
		{
			scan.POST("", scanHandler.Scan)
		}

		configRoutes := api.Group("/config")
		configRoutes.Use(middleware.JWTAuth(authService))
		{
			configRoutes.GET("", configHandler.GetConfig)
			configRoutes.PUT("", middleware.AdminOnly(), configHandler.UpdateConfig)
		}

		participants := api.Group("/participants")
		participants.Use(middleware.JWTAuth(authService), middleware.AdminOnly())
		{
			participants.POST("", participantHandler.CreateParticipant)
			participants.GET("", participantHandler.ListParticipants)
			participants.GET("/:id", participantHandler.GetParticipant)
			participants.POST("/:id/reset", participantHandler.ResetBalance)
		}

		ledger := api.Group("")
		ledger.Use(middleware.JWTAuth(authService))
		{
			ledger.GET("/redemptions", redemptionHandler.ListRedemptions)
			ledger.GET("/stats", redemptionHandler.GetStats)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
