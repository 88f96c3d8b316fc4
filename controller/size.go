package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

type SizeInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func CreateSize(c *gin.Context) {
	var input SizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size := models.Size{StoreId: c.Param("storeId"), Name: input.Name, Value: input.Value}
	if err := config.DB.Create(&size).Error; err != nil {
		dbError(c, "[SIZE_POST]", err)
		return
	}
	c.JSON(http.StatusOK, size)
}

func GetSizes(c *gin.Context) {
	var sizes []models.Size
	err := config.DB.WithContext(c.Request.Context()).
		Where("store_id = ?", c.Param("storeId")).
		Order("created_at desc").
		Find(&sizes).Error
	if err != nil {
		dbError(c, "[SIZES_GET]", err)
		return
	}
	c.JSON(http.StatusOK, sizes)
}

func GetSize(c *gin.Context) {
	var size models.Size
	err := config.DB.WithContext(c.Request.Context()).
		Where("id = ? AND store_id = ?", c.Param("sizeId"), c.Param("storeId")).
		First(&size).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Size not found"})
		return
	}
	c.JSON(http.StatusOK, size)
}

func UpdateSize(c *gin.Context) {
	var input SizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var size models.Size
	if err := config.DB.Where("id = ? AND store_id = ?", c.Param("sizeId"), c.Param("storeId")).First(&size).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Size not found"})
		return
	}

	size.Name = input.Name
	size.Value = input.Value
	if err := config.DB.Save(&size).Error; err != nil {
		dbError(c, "[SIZE_PATCH]", err)
		return
	}

	// Cached product payloads embed the size.
	invalidateProductCache(size.StoreId)
	c.JSON(http.StatusOK, size)
}

func DeleteSize(c *gin.Context) {
	result := config.DB.Where("id = ? AND store_id = ?", c.Param("sizeId"), c.Param("storeId")).Delete(&models.Size{})
	if result.Error != nil {
		dbError(c, "[SIZE_DELETE]", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Size not found"})
		return
	}

	invalidateProductCache(c.Param("storeId"))
	c.JSON(http.StatusOK, gin.H{"count": result.RowsAffected})
}
