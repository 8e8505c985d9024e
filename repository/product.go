package repository

import (
	"errors"

	"github.com/rflkt/rflkt-storage-service/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.db.Create(product).Error
}

// FindByCorrelationID returns (nil, nil) when no row matches.
func (r *ProductRepository) FindByCorrelationID(correlationID string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Where("correlation_id = ?", correlationID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) DeleteByCorrelationID(correlationID string) (int64, error) {
	result := r.db.Where("correlation_id = ?", correlationID).Delete(&entity.Product{})
	return result.RowsAffected, result.Error
}

func (r *ProductRepository) List(limit, offset int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
