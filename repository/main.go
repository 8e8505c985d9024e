package repository

import (
	"github.com/rflkt/rflkt-storage-service/infra"
)

type Repository struct {
	ProductRepo *ProductRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		ProductRepo: NewProductRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
