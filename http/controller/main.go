package controller

import (
	"github.com/rflkt/rflkt-storage-service/config"
	"github.com/rflkt/rflkt-storage-service/infra"
	"github.com/rflkt/rflkt-storage-service/provider"
	"github.com/rflkt/rflkt-storage-service/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Storage    *provider.StorageService
	Products   *provider.ProductService
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}

	storage := provider.NewStorageService(
		infra.Minio,
		infra.Redis.LocationCache(),
		config.EnvConfig.Storage.Domain,
		config.EnvConfig.Storage.DefaultRegion,
	)
	products := provider.NewProductService(
		infra.Minio,
		repo.ProductRepo,
		storage,
		config.EnvConfig.Product.Bucket,
	)

	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Storage:    storage,
		Products:   products,
	}
}
