package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/register", "", map[string]interface{}{
		"username": "will",
		"email":    "will@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	// Password material never leaks into the response.
	assert.NotContains(t, w.Body.String(), "hunter22")
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = doRequest(router, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "will@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)

	w = doRequest(router, http.MethodGet, "/me", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/register", "", map[string]interface{}{
		"email":    "will@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "will@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRejectsGarbageToken(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
