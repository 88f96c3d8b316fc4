package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
	"github.com/wxwilliamc/cyre/utils"
)

type orderResponse struct {
	models.Order
	TotalPrice string `json:"totalPrice"`
}

// GetOrders lists a store's orders for the dashboard, newest first, with a
// formatted total per order. Owner only; there is no public order surface.
func GetOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.WithContext(c.Request.Context()).
		Where("store_id = ?", c.Param("storeId")).
		Preload("Items.Product").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		dbError(c, "[ORDERS_GET]", err)
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, order := range orders {
		total := decimal.Zero
		for _, item := range order.Items {
			if item.Product != nil {
				total = total.Add(item.Product.Price)
			}
		}
		resp[i] = orderResponse{Order: order, TotalPrice: utils.FormatPrice(total)}
	}
	c.JSON(http.StatusOK, resp)
}

type CheckoutInput struct {
	ProductIds []string `json:"productIds"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
}

// Checkout is called by the storefront: it turns a cart of product ids into
// an unpaid order. Payment capture flips isPaid later, outside this API.
func Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.ProductIds) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ids are required"})
		return
	}

	storeId := c.Param("storeId")
	var store models.Store
	if err := config.DB.First(&store, "id = ?", storeId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	var products []models.Product
	err := config.DB.
		Where("store_id = ? AND is_archived = ? AND id IN ?", storeId, false, input.ProductIds).
		Find(&products).Error
	if err != nil {
		dbError(c, "[CHECKOUT_POST]", err)
		return
	}
	if len(products) != len(input.ProductIds) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more products are unavailable"})
		return
	}

	items := make([]models.OrderItem, len(products))
	for i, product := range products {
		items[i] = models.OrderItem{ProductId: product.Id}
	}

	order := models.Order{
		StoreId: storeId,
		IsPaid:  false,
		Phone:   input.Phone,
		Address: input.Address,
		Items:   items,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		dbError(c, "[CHECKOUT_POST]", err)
		return
	}
	c.JSON(http.StatusOK, order)
}
