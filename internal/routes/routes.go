package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/shoply-golang/internal/handlers"
	"github.com/shoply/shoply-golang/internal/middleware"
)

// CORSMiddleware mirrors the open cors() policy the storefront relies on.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, auth-token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	// --- Status Route (Public) ---
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Shoply API is running!")
	})

	// --- Image Upload & Serving (Public) ---
	router.POST("/upload", h.UploadImage)
	router.Static("/images", h.Config.UploadDir)

	// --- Catalog Routes (Public) ---
	router.POST("/addproduct", h.AddProduct)
	router.POST("/removeproduct", h.RemoveProduct)
	router.GET("/allproducts", h.GetAllProducts)
	router.GET("/newitems", h.GetNewItems)

	// --- Account Routes (Public) ---
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)

	// --- Cart Routes (Login Required) ---
	cart := router.Group("/")
	cart.Use(middleware.AuthRequired(h.Tokens))
	{
		cart.POST("/addtocart", h.AddToCart)
		cart.POST("/removefromcart", h.RemoveFromCart)
		cart.POST("/getcart", h.GetCart)
	}

	return router
}
