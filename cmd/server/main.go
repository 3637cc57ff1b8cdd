package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AnilYadav17/videoHub/cmd/config"
	"github.com/AnilYadav17/videoHub/pkg/database"
	"github.com/AnilYadav17/videoHub/pkg/handlers"
)

func main() {
	config.Load()

	// Initialize the database
	database.Init()

	// Set up Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.RegisterRoutes(r)

	// Start the server
	r.Run(":" + config.ServerPort)
}
