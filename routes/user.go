package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/controller"
	"github.com/wxwilliamc/cyre/middleware"
)

// UserRoute wires the identity provider endpoints. Everything here is
// rate-limited; these are the only routes reachable without a token.
func UserRoute(router *gin.Engine) {
	router.POST("/register", middleware.RateLimiter(), controller.CreateUser)
	router.POST("/login", middleware.RateLimiter(), controller.Login)
	router.POST("/forgot-password", middleware.RateLimiter(), controller.ForgotPassword)
	router.POST("/reset-password", middleware.RateLimiter(), controller.ResetPassword)
	router.GET("/me", middleware.RequireAuth, controller.Me)
}
