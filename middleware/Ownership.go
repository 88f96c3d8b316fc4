package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

// RequireStoreOwner is the ownership guard: it confirms that the store in the
// route is owned by the authenticated caller. Must run after RequireAuth on
// every mutating route under /api/:storeId. The source project repeated this
// lookup inside each handler; centralizing it here keeps the check from
// drifting between resources.
//
// To avoid a caller taking someone else's storeId and making changes on it,
// the lookup matches both the store id and the owner in one query. A miss is
// reported as 401 Unauthorized, same status space as unauthenticated.
func RequireStoreOwner(c *gin.Context) {
	userId := c.GetString("userId")
	if userId == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	storeId := c.Param("storeId")
	if storeId == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "StoreId is required"})
		return
	}

	var store models.Store
	err := config.DB.Where("id = ? AND user_id = ?", storeId, userId).First(&store).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Set("store", store)
	c.Next()
}
