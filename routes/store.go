package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/controller"
	"github.com/wxwilliamc/cyre/middleware"
)

func StoreRoute(router *gin.Engine) {
	stores := router.Group("/api/stores", middleware.RequireAuth)
	{
		stores.POST("", controller.CreateStore)
		stores.GET("", controller.GetStores)
		stores.PATCH("/:storeId", middleware.RequireStoreOwner, controller.UpdateStore)
		stores.DELETE("/:storeId", middleware.RequireStoreOwner, controller.DeleteStore)
	}
}
