package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ProductCacheTTL = 5 * time.Minute

func productsCacheKey(storeId string) string {
	return "products:" + storeId
}

// Per-product keys carry the store id so a warm cache can't answer a route
// addressing the same product through a different store.
func productCacheKey(storeId, id string) string {
	return productCachePrefix(storeId) + id
}

func productCachePrefix(storeId string) string {
	return "product:" + storeId + ":"
}

// invalidateProductCache drops the store's cached product payloads, list and
// singles alike. Category, size and color writes call this too: those rows
// ride inside the cached product JSON as preloaded relations.
func invalidateProductCache(storeId string) {
	invalidateCache(productsCacheKey(storeId))
	invalidateCachePrefix(productCachePrefix(storeId))
}

type ImageInput struct {
	URL string `json:"url" binding:"required"`
}

type ProductInput struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	CategoryId string          `json:"categoryId" binding:"required"`
	SizeId     string          `json:"sizeId" binding:"required"`
	ColorId    string          `json:"colorId" binding:"required"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	Images     []ImageInput    `json:"images" binding:"omitempty,dive"`
}

// validateProductInput holds the checks shared by create and update: at
// least one image, a positive price, and references that live in the same
// store as the product.
func validateProductInput(c *gin.Context, tag, storeId string, input *ProductInput) bool {
	if len(input.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return false
	}
	if !input.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than 0"})
		return false
	}
	refs := []struct {
		model interface{}
		id    string
		label string
	}{
		{&models.Category{}, input.CategoryId, "Category"},
		{&models.Size{}, input.SizeId, "Size"},
		{&models.Color{}, input.ColorId, "Color"},
	}
	for _, ref := range refs {
		ok, err := existsInStore(ref.model, ref.id, storeId)
		if err != nil {
			dbError(c, tag, err)
			return false
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": ref.label + " does not belong to this store"})
			return false
		}
	}
	return true
}

// CreateProduct godoc
// @Summary Create a product in a store
// @Description Creates the product together with its image attachments.
// @Tags products
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param product body ProductInput true "Product payload"
// @Success 200 {object} models.Product
// @Router /api/{storeId}/products [post]
func CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeId := c.Param("storeId")
	if !validateProductInput(c, "[PRODUCT_POST]", storeId, &input) {
		return
	}

	images := make([]models.Image, len(input.Images))
	for i, img := range input.Images {
		images[i] = models.Image{URL: img.URL}
	}

	product := models.Product{
		StoreId:    storeId,
		CategoryId: input.CategoryId,
		SizeId:     input.SizeId,
		ColorId:    input.ColorId,
		Name:       input.Name,
		Price:      input.Price,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     images,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		dbError(c, "[PRODUCT_POST]", err)
		return
	}

	invalidateCache(productsCacheKey(storeId))
	c.JSON(http.StatusOK, product)
}

// GetProducts godoc
// @Summary List a store's products
// @Description Public storefront listing. Supports categoryId, sizeId,
// @Description colorId and isFeatured filters; archived products never appear.
// @Tags products
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/{storeId}/products [get]
func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	storeId := c.Param("storeId")
	unfiltered := len(c.Request.URL.Query()) == 0

	// Only the plain listing is cached; filtered variants go to the DB.
	if unfiltered && config.RedisClient != nil {
		cacheData, err := config.RedisClient.Get(ctx, productsCacheKey(storeId)).Result()
		if err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cacheData), &products) == nil {
				c.JSON(http.StatusOK, gin.H{"source": "cache", "data": products})
				return
			}
		}
	}

	db := config.DB.WithContext(ctx).
		Where("store_id = ? AND is_archived = ?", storeId, false)
	if categoryId := c.Query("categoryId"); categoryId != "" {
		db = db.Where("category_id = ?", categoryId)
	}
	if sizeId := c.Query("sizeId"); sizeId != "" {
		db = db.Where("size_id = ?", sizeId)
	}
	if colorId := c.Query("colorId"); colorId != "" {
		db = db.Where("color_id = ?", colorId)
	}
	if c.Query("isFeatured") != "" {
		db = db.Where("is_featured = ?", true)
	}

	var products []models.Product
	err := db.Preload("Category").Preload("Size").Preload("Color").Preload("Images").
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		dbError(c, "[PRODUCTS_GET]", err)
		return
	}

	if unfiltered && config.RedisClient != nil {
		if productsJSON, err := json.Marshal(products); err == nil {
			go config.RedisClient.Set(context.Background(), productsCacheKey(storeId), productsJSON, ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{"source": "database", "data": products})
}

// GetProduct godoc
// @Summary Get a single product
// @Tags products
// @Produce json
// @Param storeId path string true "Store ID"
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Router /api/{storeId}/products/{id} [get]
func GetProduct(c *gin.Context) {
	ctx := c.Request.Context()
	storeId := c.Param("storeId")
	id := c.Param("productId")

	if config.RedisClient != nil {
		cachedProduct, err := config.RedisClient.Get(ctx, productCacheKey(storeId, id)).Result()
		if err == nil {
			var product models.Product
			if json.Unmarshal([]byte(cachedProduct), &product) == nil {
				c.JSON(http.StatusOK, gin.H{"source": "cache", "data": product})
				return
			}
		}
	}

	var product models.Product
	err := config.DB.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeId).
		Preload("Category").Preload("Size").Preload("Color").Preload("Images").
		First(&product).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if config.RedisClient != nil {
		if productJSON, err := json.Marshal(product); err == nil {
			go config.RedisClient.Set(context.Background(), productCacheKey(storeId, id), productJSON, ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{"source": "database", "data": product})
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replaces the product's fields and its whole image set in one
// @Description transaction, so a failure can't leave the product imageless.
// @Tags products
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param id path string true "Product ID"
// @Param product body ProductInput true "Product payload"
// @Success 200 {object} models.Product
// @Router /api/{storeId}/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeId := c.Param("storeId")
	var product models.Product
	if err := config.DB.Where("id = ? AND store_id = ?", c.Param("productId"), storeId).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !validateProductInput(c, "[PRODUCT_PATCH]", storeId, &input) {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.Id).Delete(&models.Image{}).Error; err != nil {
			return err
		}

		product.CategoryId = input.CategoryId
		product.SizeId = input.SizeId
		product.ColorId = input.ColorId
		product.Name = input.Name
		product.Price = input.Price
		product.IsFeatured = input.IsFeatured
		product.IsArchived = input.IsArchived
		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return err
		}

		images := make([]models.Image, len(input.Images))
		for i, img := range input.Images {
			images[i] = models.Image{ProductId: product.Id, URL: img.URL}
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}
		product.Images = images
		return nil
	})
	if err != nil {
		dbError(c, "[PRODUCT_PATCH]", err)
		return
	}

	invalidateCache(productsCacheKey(storeId), productCacheKey(storeId, product.Id))
	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param storeId path string true "Store ID"
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/{storeId}/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	storeId := c.Param("storeId")
	id := c.Param("productId")

	var product models.Product
	if err := config.DB.Where("id = ? AND store_id = ?", id, storeId).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Images go with the product; order items referencing it block the
	// delete and come back as 409.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		dbError(c, "[PRODUCT_DELETE]", err)
		return
	}

	invalidateCache(productsCacheKey(storeId), productCacheKey(storeId, id))
	c.JSON(http.StatusOK, gin.H{"count": 1})
}
