package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	BillboardId string `json:"billboardId" binding:"required"`
}

func CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeId := c.Param("storeId")
	ok, err := existsInStore(&models.Billboard{}, input.BillboardId, storeId)
	if err != nil {
		dbError(c, "[CATEGORY_POST]", err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Billboard does not belong to this store"})
		return
	}

	category := models.Category{StoreId: storeId, Name: input.Name, BillboardId: input.BillboardId}
	if err := config.DB.Create(&category).Error; err != nil {
		dbError(c, "[CATEGORY_POST]", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func GetCategories(c *gin.Context) {
	var categories []models.Category
	err := config.DB.WithContext(c.Request.Context()).
		Where("store_id = ?", c.Param("storeId")).
		Preload("Billboard").
		Order("created_at desc").
		Find(&categories).Error
	if err != nil {
		dbError(c, "[CATEGORIES_GET]", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func GetCategory(c *gin.Context) {
	var category models.Category
	err := config.DB.WithContext(c.Request.Context()).
		Where("id = ? AND store_id = ?", c.Param("categoryId"), c.Param("storeId")).
		Preload("Billboard").
		First(&category).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func UpdateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	storeId := c.Param("storeId")
	var category models.Category
	if err := config.DB.Where("id = ? AND store_id = ?", c.Param("categoryId"), storeId).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	ok, err := existsInStore(&models.Billboard{}, input.BillboardId, storeId)
	if err != nil {
		dbError(c, "[CATEGORY_PATCH]", err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Billboard does not belong to this store"})
		return
	}

	category.Name = input.Name
	category.BillboardId = input.BillboardId
	if err := config.DB.Save(&category).Error; err != nil {
		dbError(c, "[CATEGORY_PATCH]", err)
		return
	}

	// Cached product payloads embed the category.
	invalidateProductCache(storeId)
	c.JSON(http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	result := config.DB.Where("id = ? AND store_id = ?", c.Param("categoryId"), c.Param("storeId")).Delete(&models.Category{})
	if result.Error != nil {
		dbError(c, "[CATEGORY_DELETE]", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	invalidateProductCache(c.Param("storeId"))
	c.JSON(http.StatusOK, gin.H{"count": result.RowsAffected})
}
