package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/titishya/fastfood-app/config"
	"github.com/titishya/fastfood-app/database"
	"github.com/titishya/fastfood-app/kds"
	"github.com/titishya/fastfood-app/router"
	"github.com/titishya/fastfood-app/services"
	"github.com/titishya/fastfood-app/utils"
)

func init() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := database.NewOrderStore(cfg.DataFile)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize order store: %v", err)
	}

	hub := kds.NewHub()
	svc := services.NewOrderService(store, hub)

	r := router.SetupRouter(svc, hub, cfg.PublicDir)

	utils.InfoLogger.Printf("Listening on port %s, orders in %s", cfg.Port, cfg.DataFile)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
