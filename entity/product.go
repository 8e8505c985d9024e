package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title            string         `json:"title" binding:"required" gorm:"not null"`
	Description      string         `json:"description"`
	DescriptionLong  string         `json:"description_long"`
	Category         string         `json:"category" gorm:"not null"`
	Color            string         `json:"color" gorm:"not null"`
	InStock          bool           `json:"in_stock" gorm:"not null"`
	Price            float64        `json:"price" gorm:"not null"`
	PriceCurrency    string         `json:"price_currency" gorm:"not null"`
	Material         string         `json:"material"`
	Type             string         `json:"type" gorm:"not null"`
	SKU              string         `json:"sku" gorm:"not null"`
	QuantityInStock  int            `json:"quantity_in_stock" gorm:"not null"`
	Status           string         `json:"status" gorm:"not null"`
	FolderName       string         `json:"folder_name" gorm:"not null"`
	CorrelationID    string         `json:"correlation_id" gorm:"not null;index"`
	ThumbnailImage   string         `json:"thumbnail_image"`
	MainImage        string         `json:"main_image"`
	AdditionalImages datatypes.JSON `json:"additional_images"`
	CreatedAt        string         `json:"created_at" gorm:"not null"`
}
