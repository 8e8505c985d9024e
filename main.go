package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/rflkt/rflkt-storage-service/config"
	"github.com/rflkt/rflkt-storage-service/http/controller"
	routes "github.com/rflkt/rflkt-storage-service/http/route"
	infraPkg "github.com/rflkt/rflkt-storage-service/infra"
	"github.com/rflkt/rflkt-storage-service/repository"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	// The product bucket must exist before the first upload
	if err := ctrl.Storage.EnsureBucket(context.Background(), cfg.EnvConfig.Product.Bucket); err != nil {
		log.Fatalf("Failed to ensure product bucket: %v", err)
	}

	router := routes.SetupRouter(ctrl)

	log.Println("HTTP Server started on :" + cfg.EnvConfig.Port)
	if err := router.Run(":" + cfg.EnvConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
