package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/shoply-golang/internal/account"
	"go.uber.org/zap"
)

// SignupInput defines the JSON for registration.
type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup is the handler for POST /signup.
func (h *Handlers) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	token, err := h.Accounts.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"errors":  "Existing user found with the same email address.",
			})
			return
		}
		h.Log.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// LoginInput defines the JSON for login.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /login. Credential failures answer 200 with
// success:false; the two failure modes stay distinguishable because the
// storefront shows different messages for them.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	token, err := h.Accounts.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrWrongEmail):
			c.JSON(http.StatusOK, gin.H{"success": false, "errors": "Wrong Email ID"})
		case errors.Is(err, account.ErrWrongPassword):
			c.JSON(http.StatusOK, gin.H{"success": false, "errors": "Wrong Password"})
		default:
			h.Log.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
