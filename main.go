package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/middleware"
	"github.com/wxwilliamc/cyre/routes"
)

func main() {
	config.Connection()
	config.InitRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.UserRoute(router)
	routes.StoreRoute(router)
	routes.ResourceRoute(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
