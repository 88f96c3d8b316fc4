package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

// Value must be a hex code; "blue" is rejected at binding time.
type ColorInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required,hexcolor"`
}

func CreateColor(c *gin.Context) {
	var input ColorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	color := models.Color{StoreId: c.Param("storeId"), Name: input.Name, Value: input.Value}
	if err := config.DB.Create(&color).Error; err != nil {
		dbError(c, "[COLOR_POST]", err)
		return
	}
	c.JSON(http.StatusOK, color)
}

func GetColors(c *gin.Context) {
	var colors []models.Color
	err := config.DB.WithContext(c.Request.Context()).
		Where("store_id = ?", c.Param("storeId")).
		Order("created_at desc").
		Find(&colors).Error
	if err != nil {
		dbError(c, "[COLORS_GET]", err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func GetColor(c *gin.Context) {
	var color models.Color
	err := config.DB.WithContext(c.Request.Context()).
		Where("id = ? AND store_id = ?", c.Param("colorId"), c.Param("storeId")).
		First(&color).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Color not found"})
		return
	}
	c.JSON(http.StatusOK, color)
}

func UpdateColor(c *gin.Context) {
	var input ColorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var color models.Color
	if err := config.DB.Where("id = ? AND store_id = ?", c.Param("colorId"), c.Param("storeId")).First(&color).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Color not found"})
		return
	}

	color.Name = input.Name
	color.Value = input.Value
	if err := config.DB.Save(&color).Error; err != nil {
		dbError(c, "[COLOR_PATCH]", err)
		return
	}

	// Cached product payloads embed the color.
	invalidateProductCache(color.StoreId)
	c.JSON(http.StatusOK, color)
}

func DeleteColor(c *gin.Context) {
	result := config.DB.Where("id = ? AND store_id = ?", c.Param("colorId"), c.Param("storeId")).Delete(&models.Color{})
	if result.Error != nil {
		dbError(c, "[COLOR_DELETE]", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Color not found"})
		return
	}

	invalidateProductCache(c.Param("storeId"))
	c.JSON(http.StatusOK, gin.H{"count": result.RowsAffected})
}
