package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shoply/shoply-golang/internal/auth"
	"github.com/stretchr/testify/assert"
)

func newGatedRouter(tokens *auth.TokenService, reached *bool, gotUserID *int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", AuthRequired(tokens), func(c *gin.Context) {
		*reached = true
		*gotUserID = c.GetInt64("userID")
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestAuthRequired_MissingToken(t *testing.T) {
	var reached bool
	var userID int64
	router := newGatedRouter(auth.NewTokenService("secret_ecom"), &reached, &userID)

	req := httptest.NewRequest("POST", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "handler must not run without a token")
	assert.Contains(t, w.Body.String(), "Please authenticate")
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	var reached bool
	var userID int64
	router := newGatedRouter(auth.NewTokenService("secret_ecom"), &reached, &userID)

	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("auth-token", "garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret_ecom")
	var reached bool
	var userID int64
	router := newGatedRouter(tokens, &reached, &userID)

	token, err := tokens.GenerateToken(42)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("auth-token", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Equal(t, int64(42), userID)
}

func TestAuthRequired_TokenSignedWithOtherSecret(t *testing.T) {
	var reached bool
	var userID int64
	router := newGatedRouter(auth.NewTokenService("secret_ecom"), &reached, &userID)

	foreign, err := auth.NewTokenService("someone_elses_secret").GenerateToken(42)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/protected", nil)
	req.Header.Set("auth-token", foreign)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}
