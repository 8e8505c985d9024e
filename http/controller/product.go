package controller

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rflkt/rflkt-storage-service/provider"
	"github.com/rflkt/rflkt-storage-service/utils"
)

func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to parse multipart form: %v", err)
		utils.JSON400(c, "Invalid multipart form")
		return
	}

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	quantity, _ := strconv.Atoi(c.PostForm("quantity_in_stock"))
	inStock := c.PostForm("in_stock") != "false"

	input := provider.CreateProductInput{
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		DescriptionLong: c.PostForm("description_long"),
		Category:        c.PostForm("category"),
		Color:           c.PostForm("color"),
		Material:        c.PostForm("material"),
		Type:            c.PostForm("type"),
		InStock:         inStock,
		Price:           price,
		PriceCurrency:   c.PostForm("price_currency"),
		QuantityInStock: quantity,
		Status:          c.PostForm("status"),
	}

	files := form.File["images"]
	readers := make([]io.Reader, 0, len(files))
	for _, fileHeader := range files {
		f, err := fileHeader.Open()
		if err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to open uploaded image: %v", err)
			utils.JSON400(c, "Failed to read uploaded image")
			return
		}
		defer f.Close()
		readers = append(readers, f)
	}
	input.Images = readers

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Creating product '%s' with %d images", input.Title, len(readers))

	product, err := ctrl.Products.CreateProduct(ctx, input)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to create product: %v", err)
		respondError(c, err)
		return
	}

	// The product exists either way; a lost event is logged, not fatal
	if err := ctrl.Infra.Produce.ProductService.PublishProductCreated(ctx, product.ID.String(), product.SKU, product.FolderName); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to publish product created event: %v", err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Successfully created product %s (sku %s)", product.ID, product.SKU)
	utils.JSON201(c, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

func (ctrl *Controller) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	products, err := ctrl.Repository.ProductRepo.List(limit, offset)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to list products: %v", err)
		utils.JSON500(c, "Failed to list products")
		return
	}

	utils.JSON200(c, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	folderName := c.Param("folder_name")
	if folderName == "" {
		utils.JSON400(c, "folder_name is required")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Deleting product with folder '%s'", folderName)

	result, err := ctrl.Products.DeleteProduct(ctx, folderName)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to delete product: %v", err)
		respondError(c, err)
		return
	}

	if err := ctrl.Infra.Produce.ProductService.PublishProductDeleted(ctx, result.FolderName, result.CorrelationID, result.StorageWarning == ""); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to publish product deleted event: %v", err)
	}

	if result.StorageWarning != "" {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Product] Partial delete for folder '%s': %s", folderName, result.StorageWarning)
		utils.JSON200(c, gin.H{
			"message": "Product deleted with warnings",
			"result":  result,
			"warning": result.StorageWarning,
		})
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Successfully deleted product with folder '%s'", folderName)
	utils.JSON200(c, gin.H{
		"message": "Product deleted successfully",
		"result":  result,
	})
}
