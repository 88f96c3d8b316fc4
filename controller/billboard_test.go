package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxwilliamc/cyre/config"
	"github.com/wxwilliamc/cyre/models"
)

func TestCreateBillboard(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")
	token := authToken(t, user.Id)

	w := doRequest(router, http.MethodPost, "/api/"+store.Id+"/billboards", token, map[string]interface{}{
		"label":    "Summer sale",
		"imageUrl": "https://img.example/summer.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var billboard models.Billboard
	decodeBody(t, w, &billboard)
	assert.NotEmpty(t, billboard.Id)
	assert.Equal(t, store.Id, billboard.StoreId)
	assert.Equal(t, "Summer sale", billboard.Label)
}

func TestCreateBillboardUnauthenticated(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")

	// No token at all; the request must die before validation runs, so even
	// a junk payload comes back 401, not 400.
	w := doRequest(router, http.MethodPost, "/api/"+store.Id+"/billboards", "", map[string]interface{}{
		"label": "",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, countRows(t, &models.Billboard{}))
}

func TestCreateBillboardValidation(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")
	token := authToken(t, user.Id)

	for name, body := range map[string]map[string]interface{}{
		"empty label":    {"label": "", "imageUrl": "https://img.example/x.png"},
		"empty imageUrl": {"label": "Sale", "imageUrl": ""},
		"missing fields": {},
	} {
		w := doRequest(router, http.MethodPost, "/api/"+store.Id+"/billboards", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	assert.Zero(t, countRows(t, &models.Billboard{}))
}

func TestUpdateBillboardCrossTenant(t *testing.T) {
	router := setupRouter(t)
	ownerA := createUser(t, "u1@example.com")
	ownerB := createUser(t, "u2@example.com")
	storeA := createStore(t, ownerA.Id, "store-a")
	createStore(t, ownerB.Id, "store-b")
	billboard := createBillboard(t, storeA.Id, "original")

	// U2 tries to edit a billboard under U1's store.
	w := doRequest(router, http.MethodPatch, "/api/"+storeA.Id+"/billboards/"+billboard.Id, authToken(t, ownerB.Id), map[string]interface{}{
		"label":    "hijacked",
		"imageUrl": "https://img.example/evil.png",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var unchanged models.Billboard
	require.NoError(t, config.DB.First(&unchanged, "id = ?", billboard.Id).Error)
	assert.Equal(t, "original", unchanged.Label)
}

func TestUpdateBillboardWrongStoreId(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	storeA := createStore(t, user.Id, "store-a")
	storeB := createStore(t, user.Id, "store-b")
	billboard := createBillboard(t, storeA.Id, "original")
	token := authToken(t, user.Id)

	// Same owner, but the billboard lives under store A; addressing it
	// through store B must not find it.
	w := doRequest(router, http.MethodPatch, "/api/"+storeB.Id+"/billboards/"+billboard.Id, token, map[string]interface{}{
		"label":    "moved",
		"imageUrl": "https://img.example/x.png",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBillboardInUse(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")
	billboard := createBillboard(t, store.Id, "featured")
	createCategory(t, store.Id, billboard.Id, "shoes")
	token := authToken(t, user.Id)

	w := doRequest(router, http.MethodDelete, "/api/"+store.Id+"/billboards/"+billboard.Id, token, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// Row must survive the refused delete.
	assert.EqualValues(t, 1, countRows(t, &models.Billboard{}))
}

func TestGetBillboardsPublic(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")
	createBillboard(t, store.Id, "one")
	createBillboard(t, store.Id, "two")

	w := doRequest(router, http.MethodGet, "/api/"+store.Id+"/billboards", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Billboard `json:"data"`
	}
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Data, 2)
}

func TestGetBillboardNotFound(t *testing.T) {
	router := setupRouter(t)
	user := createUser(t, "owner@example.com")
	store := createStore(t, user.Id, "sneakers")

	w := doRequest(router, http.MethodGet, "/api/"+store.Id+"/billboards/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
