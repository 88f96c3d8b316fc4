package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

func TestCreateStore(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	token := authToken(t, user.Id)

	w := doRequest(router, http.MethodPost, "/api/stores", token, map[string]interface{}{"name": "sneakers"})
	require.Equal(t, http.StatusOK, w.Code)

	var store models.Store
	decodeBody(t, w, &store)
	assert.NotEmpty(t, store.Id)
	assert.Equal(t, user.Id, store.UserId)
}

func TestCreateStoreRequiresName(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")

	w := doRequest(router, http.MethodPost, "/api/stores", authToken(t, user.Id), map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStoreUnauthenticated(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/stores", "", map[string]interface{}{"name": "sneakers"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, countRows(t, &models.Store{}))
}

func TestGetStoresListsOnlyOwn(t *testing.T) {
	router := setupRouter(t)
	u1 := createUser(t, "u1@example.com")
	u2 := createUser(t, "u2@example.com")
	createStore(t, u1.Id, "mine-1")
	createStore(t, u1.Id, "mine-2")
	createStore(t, u2.Id, "theirs")

	w := doRequest(router, http.MethodGet, "/api/stores", authToken(t, u1.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stores []models.Store
	decodeBody(t, w, &stores)
	require.Len(t, stores, 2)
	for _, s := range stores {
		assert.Equal(t, u1.Id, s.UserId)
	}
}

func TestUpdateStore(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "old name")

	w := doRequest(router, http.MethodPatch, "/api/stores/"+store.Id, authToken(t, user.Id), map[string]interface{}{"name": "new name"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Store
	require.NoError(t, config.DB.First(&updated, "id = ?", store.Id).Error)
	assert.Equal(t, "new name", updated.Name)
}

func TestUpdateStoreNotOwner(t *testing.T) {
	router := setupRouter(t)
	owner := createUser(t, "owner@example.com")
	intruder := createUser(t, "intruder@example.com")
	store := createStore(t, owner.Id, "sneakers")

	w := doRequest(router, http.MethodPatch, "/api/stores/"+store.Id, authToken(t, intruder.Id), map[string]interface{}{"name": "stolen"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var unchanged models.Store
	require.NoError(t, config.DB.First(&unchanged, "id = ?", store.Id).Error)
	assert.Equal(t, "sneakers", unchanged.Name)
}

func TestDeleteStoreCascades(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")
	createBillboard(t, store.Id, "hero")
	createSize(t, store.Id, "Medium", "M")

	w := doRequest(router, http.MethodDelete, "/api/stores/"+store.Id, authToken(t, user.Id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Zero(t, countRows(t, &models.Store{}))
	assert.Zero(t, countRows(t, &models.Billboard{}))
	assert.Zero(t, countRows(t, &models.Size{}))
}
