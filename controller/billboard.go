package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

const BillboardCacheTTL = 5 * time.Minute

func billboardsCacheKey(storeId string) string {
	return "billboards:" + storeId
}

type BillboardInput struct {
	Label    string `json:"label" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

func CreateBillboard(c *gin.Context) {
	var input BillboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeId := c.Param("storeId")
	billboard := models.Billboard{StoreId: storeId, Label: input.Label, ImageURL: input.ImageURL}
	if err := config.DB.Create(&billboard).Error; err != nil {
		dbError(c, "[BILLBOARD_POST]", err)
		return
	}

	invalidateCache(billboardsCacheKey(storeId))
	c.JSON(http.StatusOK, billboard)
}

// GetBillboards is public: the storefront renders these without logging in.
func GetBillboards(c *gin.Context) {
	ctx := c.Request.Context()
	storeId := c.Param("storeId")

	if config.RedisClient != nil {
		cacheData, err := config.RedisClient.Get(ctx, billboardsCacheKey(storeId)).Result()
		if err == nil {
			var billboards []models.Billboard
			if json.Unmarshal([]byte(cacheData), &billboards) == nil {
				c.JSON(http.StatusOK, gin.H{"source": "cache", "data": billboards})
				return
			}
		}
	}

	var billboards []models.Billboard
	if err := config.DB.WithContext(ctx).Where("store_id = ?", storeId).Order("created_at desc").Find(&billboards).Error; err != nil {
		dbError(c, "[BILLBOARDS_GET]", err)
		return
	}

	if config.RedisClient != nil {
		if billboardsJSON, err := json.Marshal(billboards); err == nil {
			go config.RedisClient.Set(context.Background(), billboardsCacheKey(storeId), billboardsJSON, BillboardCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{"source": "database", "data": billboards})
}

func GetBillboard(c *gin.Context) {
	var billboard models.Billboard
	err := config.DB.WithContext(c.Request.Context()).
		Where("id = ? AND store_id = ?", c.Param("billboardId"), c.Param("storeId")).
		First(&billboard).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billboard not found"})
		return
	}
	c.JSON(http.StatusOK, billboard)
}

func UpdateBillboard(c *gin.Context) {
	var input BillboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeId := c.Param("storeId")
	var billboard models.Billboard
	if err := config.DB.Where("id = ? AND store_id = ?", c.Param("billboardId"), storeId).First(&billboard).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billboard not found"})
		return
	}

	billboard.Label = input.Label
	billboard.ImageURL = input.ImageURL
	if err := config.DB.Save(&billboard).Error; err != nil {
		dbError(c, "[BILLBOARD_PATCH]", err)
		return
	}

	invalidateCache(billboardsCacheKey(storeId))
	c.JSON(http.StatusOK, billboard)
}

func DeleteBillboard(c *gin.Context) {
	storeId := c.Param("storeId")

	result := config.DB.Where("id = ? AND store_id = ?", c.Param("billboardId"), storeId).Delete(&models.Billboard{})
	if result.Error != nil {
		// A category still pointing here blocks the delete; dbError turns
		// that into a 409 instead of a generic failure.
		dbError(c, "[BILLBOARD_DELETE]", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billboard not found"})
		return
	}

	invalidateCache(billboardsCacheKey(storeId))
	c.JSON(http.StatusOK, gin.H{"count": result.RowsAffected})
}
