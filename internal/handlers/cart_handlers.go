package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/shoply-golang/internal/account"
	"go.uber.org/zap"
)

// CartItemInput defines the JSON for both cart mutations.
type CartItemInput struct {
	ItemID *int `json:"itemId" binding:"required"`
}

// userIDFromContext pulls the id the auth middleware resolved.
func userIDFromContext(c *gin.Context) int64 {
	userID, _ := c.Get("userID")
	return userID.(int64)
}

// AddToCart is the handler for POST /addtocart. The plain "Added" body is
// what the storefront expects.
func (h *Handlers) AddToCart(c *gin.Context) {
	userID := userIDFromContext(c)

	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	if err := h.Accounts.AddToCart(c.Request.Context(), userID, *input.ItemID); err != nil {
		h.cartError(c, "add to cart failed", userID, err)
		return
	}

	c.String(http.StatusOK, "Added")
}

// RemoveFromCart is the handler for POST /removefromcart.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	userID := userIDFromContext(c)

	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	if err := h.Accounts.RemoveFromCart(c.Request.Context(), userID, *input.ItemID); err != nil {
		h.cartError(c, "remove from cart failed", userID, err)
		return
	}

	c.String(http.StatusOK, "Removed")
}

// GetCart is the handler for POST /getcart: the full cart map as stored.
func (h *Handlers) GetCart(c *gin.Context) {
	userID := userIDFromContext(c)

	cart, err := h.Accounts.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.cartError(c, "get cart failed", userID, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *Handlers) cartError(c *gin.Context, msg string, userID int64, err error) {
	if errors.Is(err, account.ErrItemOutOfRange) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}
	h.Log.Error(msg, zap.Int64("userID", userID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Cart operation failed"})
}
