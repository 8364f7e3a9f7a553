package main

import (
	"log"

	"github.com/cscportal/portal-go/internal/api/middleware"
	"github.com/cscportal/portal-go/internal/api/routes"
	"github.com/cscportal/portal-go/internal/config"
	"github.com/cscportal/portal-go/internal/config/db"
	"github.com/cscportal/portal-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	db.Init()
	storage.Init()
	middleware.Init()

	r := gin.Default()
	r.Use(middleware.CORS())
	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
