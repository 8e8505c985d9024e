package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rflkt/rflkt-storage-service/entity"
	"github.com/rflkt/rflkt-storage-service/utils"
	"gorm.io/datatypes"
)

// ProductStore is the slice of the product repository the service needs.
// FindByCorrelationID returns (nil, nil) when no row matches.
type ProductStore interface {
	Create(product *entity.Product) error
	FindByCorrelationID(correlationID string) (*entity.Product, error)
	DeleteByCorrelationID(correlationID string) (int64, error)
}

type CreateProductInput struct {
	Title           string
	Description     string
	DescriptionLong string
	Category        string
	Color           string
	Material        string
	Type            string
	InStock         bool
	Price           float64
	PriceCurrency   string
	QuantityInStock int
	Status          string
	Images          []io.Reader
}

// DeleteProductResult distinguishes full success from the partial case
// where the database row is gone but the storage objects are not. The two
// deletions are not transactional and there is no compensating rollback.
type DeleteProductResult struct {
	FolderName     string `json:"folder_name"`
	CorrelationID  string `json:"correlation_id"`
	StorageWarning string `json:"storage_warning,omitempty"`
}

// ProductService creates and deletes products: images go to the object
// store under a per-product folder, the row goes to the database keyed by
// the folder's correlation id suffix.
type ProductService struct {
	store    ObjectStore
	products ProductStore
	storage  *StorageService
	bucket   string
	now      func() time.Time
}

func NewProductService(store ObjectStore, products ProductStore, storage *StorageService, bucket string) *ProductService {
	if store == nil || products == nil || storage == nil {
		panic("ProductService requires an object store, a product store and a storage service")
	}
	return &ProductService{
		store:    store,
		products: products,
		storage:  storage,
		bucket:   bucket,
		now:      time.Now,
	}
}

// CreateProduct uploads the image set (consumed exactly once) and inserts
// the product row. The first image becomes the thumbnail, the second the
// main image, the rest additional images. Every image is re-encoded to PNG
// before storing.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if in.Title == "" {
		return nil, E(KindInvalidArgument, "product title is required")
	}
	if len(in.Images) == 0 {
		return nil, E(KindInvalidArgument, "at least one product image is required")
	}

	folderName, correlationID := utils.NewFolderName(in.Title)

	var thumbnailURL, mainURL string
	additionalURLs := make([]string, 0, len(in.Images))

	for idx, img := range in.Images {
		data, err := NormalizeImage(img)
		if err != nil {
			return nil, err
		}

		key := fmt.Sprintf("%s/image_%d.png", folderName, idx)
		if err := s.store.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), ProductImageContentType); err != nil {
			return nil, Classify(fmt.Sprintf("failed to upload image %d", idx), err)
		}

		url, err := s.storage.PublicObjectURL(ctx, s.bucket, key)
		if err != nil {
			return nil, err
		}

		switch idx {
		case 0:
			thumbnailURL = url
		case 1:
			mainURL = url
		default:
			additionalURLs = append(additionalURLs, url)
		}
	}

	additionalJSON, err := json.Marshal(additionalURLs)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "failed to encode image urls", Err: err}
	}

	product := &entity.Product{
		ID:               uuid.New(),
		Title:            in.Title,
		Description:      in.Description,
		DescriptionLong:  in.DescriptionLong,
		Category:         in.Category,
		Color:            in.Color,
		InStock:          in.InStock,
		Price:            in.Price,
		PriceCurrency:    in.PriceCurrency,
		Material:         in.Material,
		Type:             in.Type,
		SKU:              utils.GenerateSKU(in.Title, in.Category, in.Color, in.Type, s.now()),
		QuantityInStock:  in.QuantityInStock,
		Status:           in.Status,
		FolderName:       folderName,
		CorrelationID:    correlationID,
		ThumbnailImage:   thumbnailURL,
		MainImage:        mainURL,
		AdditionalImages: datatypes.JSON(additionalJSON),
		CreatedAt:        s.now().Format(time.RFC3339),
	}

	if err := s.products.Create(product); err != nil {
		// Rollback the uploaded folder so a failed insert leaves no orphans
		_ = s.store.RemoveObjectsWithPrefix(ctx, s.bucket, folderName+"/")
		return nil, &Error{Kind: KindInternal, Message: "failed to insert product", Err: err}
	}

	return product, nil
}

// DeleteProduct removes the database row matched by the folder's trailing
// correlation id, then best-effort deletes every object under the folder
// prefix. A missing row is NotFound and triggers no storage deletion; a
// failed storage delete after a successful row delete is reported as a
// warning, not an error.
func (s *ProductService) DeleteProduct(ctx context.Context, folderName string) (*DeleteProductResult, error) {
	correlationID, err := utils.CorrelationIDFromFolder(folderName)
	if err != nil {
		return nil, &Error{Kind: KindInvalidArgument, Message: "invalid product folder name", Err: err}
	}

	product, err := s.products.FindByCorrelationID(correlationID)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "failed to look up product", Err: err}
	}
	if product == nil {
		return nil, E(KindNotFound, fmt.Sprintf("no product matches folder %q", folderName))
	}

	if _, err := s.products.DeleteByCorrelationID(correlationID); err != nil {
		return nil, &Error{Kind: KindInternal, Message: "failed to delete product row", Err: err}
	}

	result := &DeleteProductResult{
		FolderName:    folderName,
		CorrelationID: correlationID,
	}

	if err := s.store.RemoveObjectsWithPrefix(ctx, s.bucket, folderName+"/"); err != nil {
		result.StorageWarning = fmt.Sprintf("product row deleted but storage cleanup failed: %v", err)
	}
	return result, nil
}
