package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/controller"
	"github.com/wxwilliamc/cyre/middleware"
)

// ResourceRoute registers the store-scoped resources. Reads are public so
// the storefront can consume them; every write goes through RequireAuth and
// the store ownership guard, in that order, before the handler runs.
func ResourceRoute(router *gin.Engine) {
	store := router.Group("/api/:storeId")

	owner := []gin.HandlerFunc{middleware.RequireAuth, middleware.RequireStoreOwner}

	billboards := store.Group("/billboards")
	{
		billboards.GET("", controller.GetBillboards)
		billboards.GET("/:billboardId", controller.GetBillboard)
		billboards.POST("", append(owner, controller.CreateBillboard)...)
		billboards.PATCH("/:billboardId", append(owner, controller.UpdateBillboard)...)
		billboards.DELETE("/:billboardId", append(owner, controller.DeleteBillboard)...)
	}

	categories := store.Group("/categories")
	{
		categories.GET("", controller.GetCategories)
		categories.GET("/:categoryId", controller.GetCategory)
		categories.POST("", append(owner, controller.CreateCategory)...)
		categories.PATCH("/:categoryId", append(owner, controller.UpdateCategory)...)
		categories.DELETE("/:categoryId", append(owner, controller.DeleteCategory)...)
	}

	sizes := store.Group("/sizes")
	{
		sizes.GET("", controller.GetSizes)
		sizes.GET("/:sizeId", controller.GetSize)
		sizes.POST("", append(owner, controller.CreateSize)...)
		sizes.PATCH("/:sizeId", append(owner, controller.UpdateSize)...)
		sizes.DELETE("/:sizeId", append(owner, controller.DeleteSize)...)
	}

	colors := store.Group("/colors")
	{
		colors.GET("", controller.GetColors)
		colors.GET("/:colorId", controller.GetColor)
		colors.POST("", append(owner, controller.CreateColor)...)
		colors.PATCH("/:colorId", append(owner, controller.UpdateColor)...)
		colors.DELETE("/:colorId", append(owner, controller.DeleteColor)...)
	}

	products := store.Group("/products")
	{
		products.GET("", controller.GetProducts)
		products.GET("/:productId", controller.GetProduct)
		products.POST("", append(owner, controller.CreateProduct)...)
		products.PATCH("/:productId", append(owner, controller.UpdateProduct)...)
		products.DELETE("/:productId", append(owner, controller.DeleteProduct)...)
	}

	store.GET("/orders", append(owner, controller.GetOrders)...)
	store.POST("/checkout", controller.Checkout)
}
