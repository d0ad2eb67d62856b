package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/models"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func TestLoginEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware.SetSecretKey("test-secret")
	db := setupTestDB(t)
	users := services.NewUserService(db)
	controller := NewUserController(users)

	_, err := users.CreateUser(&models.RegisterRequest{
		Username: "oscar",
		Email:    "oscar@test.local",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/login", `{"username": "oscar", "password": "secret123"}`)

	controller.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "oscar", response.User.Username)
	assert.Equal(t, models.RoleAdmin, response.User.Role)
}

func TestLoginEndpointBadPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware.SetSecretKey("test-secret")
	db := setupTestDB(t)
	users := services.NewUserService(db)
	controller := NewUserController(users)

	_, err := users.CreateUser(&models.RegisterRequest{
		Username: "oscar",
		Password: "secret123",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/login", `{"username": "oscar", "password": "nope"}`)

	controller.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterEndpointHidesPasswordHash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	users := services.NewUserService(db)
	controller := NewUserController(users)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/users",
		`{"username": "maria", "email": "maria@test.local", "password": "pw", "role": "member"}`)

	controller.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "pw")
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestSearchUsersEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	users := services.NewUserService(db)
	controller := NewUserController(users)

	_, err := users.CreateUser(&models.RegisterRequest{
		Username: "oscar",
		Email:    "oscar@club.local",
		Password: "pw",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/users/search?q=osc", nil)

	controller.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []models.UserModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "oscar", response[0].Username)
}
