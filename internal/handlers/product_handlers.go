package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/shoply-golang/internal/catalog"
	"go.uber.org/zap"
)

// AddProductInput defines the JSON for creating a product. The storefront
// sends the category under "cat".
type AddProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"cat" binding:"required"`
	Price       float64 `json:"price"`
	Image       string  `json:"image" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// AddProduct is the handler for POST /addproduct.
func (h *Handlers) AddProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	_, err := h.Catalog.Add(c.Request.Context(),
		input.Title, input.Category, input.Price, input.Image, input.Description)
	if err != nil {
		if errors.Is(err, catalog.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
			return
		}
		h.Log.Error("add product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to save product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"title":   input.Title,
	})
}

// RemoveProductInput defines the JSON for deleting a product. The title is
// optional and only echoed back.
type RemoveProductInput struct {
	ID    int64  `json:"id" binding:"required"`
	Title string `json:"title"`
}

// RemoveProduct is the handler for POST /removeproduct. Deletion is
// idempotent: an unknown id still answers success.
func (h *Handlers) RemoveProduct(c *gin.Context) {
	var input RemoveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	if err := h.Catalog.Remove(c.Request.Context(), input.ID); err != nil {
		h.Log.Error("remove product failed", zap.Int64("id", input.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to remove product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"title":   input.Title,
	})
}

// GetAllProducts is the handler for GET /allproducts.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetNewItems is the handler for GET /newitems: up to four of the newest
// products.
func (h *Handlers) GetNewItems(c *gin.Context) {
	products, err := h.Catalog.ListRecent(c.Request.Context())
	if err != nil {
		h.Log.Error("list new items failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Failed to fetch new items"})
		return
	}

	c.JSON(http.StatusOK, products)
}
