package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

type StoreInput struct {
	Name string `json:"name" binding:"required"`
}

func CreateStore(c *gin.Context) {
	var input StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := models.Store{UserId: c.GetString("userId"), Name: input.Name}
	if err := config.DB.Create(&store).Error; err != nil {
		dbError(c, "[STORES_POST]", err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// GetStores feeds the store switcher: every store owned by the caller.
func GetStores(c *gin.Context) {
	var stores []models.Store
	err := config.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", c.GetString("userId")).
		Order("created_at asc").
		Find(&stores).Error
	if err != nil {
		dbError(c, "[STORES_GET]", err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func UpdateStore(c *gin.Context) {
	var input StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// RequireStoreOwner already matched the row against the caller.
	store := c.MustGet("store").(models.Store)
	store.Name = input.Name
	if err := config.DB.Save(&store).Error; err != nil {
		dbError(c, "[STORE_PATCH]", err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// DeleteStore removes the store; children go with it through the database
// cascade rules, not application code.
func DeleteStore(c *gin.Context) {
	store := c.MustGet("store").(models.Store)

	result := config.DB.Delete(&models.Store{}, "id = ?", store.Id)
	if result.Error != nil {
		dbError(c, "[STORE_DELETE]", result.Error)
		return
	}
	invalidateCache(billboardsCacheKey(store.Id))
	invalidateProductCache(store.Id)
	c.JSON(http.StatusOK, gin.H{"count": result.RowsAffected})
}
