package main

import (
	"fmt"
	"log"

	"orderdesk/configs"
	"orderdesk/middlewares"
	"orderdesk/routes"
	"orderdesk/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// In-memory store, rebuilt and reseeded on every start
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedRoot(cfg); err != nil {
		log.Fatalf("seed superadmin failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// Live order feed
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
