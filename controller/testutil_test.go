package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
	"github.com/wxwilliamc/cyre/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// setupRouter gives each test its own in-memory database (foreign keys on,
// single connection so the shared-cache DB survives the whole test) and a
// router with the full route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", testSecret)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	config.DB = db
	config.RedisClient = nil

	router := gin.New()
	routes.UserRoute(router)
	routes.StoreRoute(router)
	routes.ResourceRoute(router)
	return router
}

func createUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "not-a-real-hash"}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func authToken(t *testing.T, userId string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userId,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func createStore(t *testing.T, userId, name string) models.Store {
	t.Helper()
	store := models.Store{UserId: userId, Name: name}
	require.NoError(t, config.DB.Create(&store).Error)
	return store
}

func createBillboard(t *testing.T, storeId, label string) models.Billboard {
	t.Helper()
	billboard := models.Billboard{StoreId: storeId, Label: label, ImageURL: "https://img.example/" + label}
	require.NoError(t, config.DB.Create(&billboard).Error)
	return billboard
}

func createCategory(t *testing.T, storeId, billboardId, name string) models.Category {
	t.Helper()
	category := models.Category{StoreId: storeId, BillboardId: billboardId, Name: name}
	require.NoError(t, config.DB.Create(&category).Error)
	return category
}

func createSize(t *testing.T, storeId, name, value string) models.Size {
	t.Helper()
	size := models.Size{StoreId: storeId, Name: name, Value: value}
	require.NoError(t, config.DB.Create(&size).Error)
	return size
}

func createColor(t *testing.T, storeId, name, value string) models.Color {
	t.Helper()
	color := models.Color{StoreId: storeId, Name: name, Value: value}
	require.NoError(t, config.DB.Create(&color).Error)
	return color
}

func createProduct(t *testing.T, store models.Store, name string, archived bool) models.Product {
	t.Helper()
	billboard := createBillboard(t, store.Id, name+"-bb")
	category := createCategory(t, store.Id, billboard.Id, name+"-cat")
	size := createSize(t, store.Id, name+"-size", "M")
	color := createColor(t, store.Id, name+"-color", "#000000")
	product := models.Product{
		StoreId:    store.Id,
		CategoryId: category.Id,
		SizeId:     size.Id,
		ColorId:    color.Id,
		Name:       name,
		Price:      decimal.NewFromFloat(19.99),
		IsArchived: archived,
		Images:     []models.Image{{URL: "https://img.example/" + name}},
	}
	require.NoError(t, config.DB.Create(&product).Error)
	return product
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, config.DB.Model(model).Count(&count).Error)
	return count
}
