package main

import (
	"fmt"
	"log"
	"os"

	"pawsgroom-backend/config"
	"pawsgroom-backend/models"
	"pawsgroom-backend/routes"
	"pawsgroom-backend/services"
	"pawsgroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var cfg config.Config

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	utils.InitLogger()
	cfg = config.Load()

	if err := config.ConnectDB(cfg.DatabaseURL); err != nil {
		utils.Log.Fatalf("failed to connect database: %v", err)
	}

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.GalleryImage{},
	)
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := config.SeedDatabase(); err != nil {
			utils.Log.Fatalf("seed failed: %v", err)
		}
		return
	}

	services.StartOrphanSweeper(config.DB, cfg.UploadDir)

	r := routes.SetupRouter(cfg)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
