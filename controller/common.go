package controller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/utils"
)

// dbError is the boundary for unexpected persistence failures: log the raw
// error with the handler's tag, tell the caller as little as possible.
// Foreign-key refusals get their own status so the dashboard can say
// "remove the products using this first" instead of "something went wrong".
func dbError(c *gin.Context, tag string, err error) {
	log.Println(tag, err)
	if utils.IsForeignKeyViolation(err) {
		c.JSON(http.StatusConflict, gin.H{"error": "Resource is in use"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})
}

// invalidateCache drops stale keys in the background after a write.
func invalidateCache(keys ...string) {
	if config.RedisClient == nil {
		return
	}
	go config.RedisClient.Del(context.Background(), keys...)
}

// invalidateCachePrefix scans out every key under a prefix, for caches keyed
// per row (the single-product entries) where the writer doesn't know all the
// ids, e.g. a store delete.
func invalidateCachePrefix(prefix string) {
	if config.RedisClient == nil {
		return
	}
	go func() {
		ctx := context.Background()
		iter := config.RedisClient.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			config.RedisClient.Del(ctx, iter.Val())
		}
	}()
}

// existsInStore checks that a referenced row (billboard, category, size,
// color) lives in the given store. Keeps products from pointing at another
// tenant's rows. A database failure is the caller's to report as such, not
// as a validation miss.
func existsInStore(model interface{}, id, storeId string) (bool, error) {
	var count int64
	err := config.DB.Model(model).Where("id = ? AND store_id = ?", id, storeId).Count(&count).Error
	return count > 0, err
}
