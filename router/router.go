package router

import (
	"log"
	"net/http"

	"fixstore/config"
	"fixstore/controllers"
	"fixstore/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// Públicas + autenticadas (token) + admin (token + role admin, checado uma
// vez no grupo, não por handler).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(Logger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public (no auth)
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.GET("/logout", controllers.Logout)
	r.POST("/forgotPassword", controllers.ForgotPassword)
	r.PATCH("/resetPassword/:token", controllers.ResetPassword)

	r.GET("/products", controllers.GetProducts)
	r.GET("/products/:id", controllers.GetProductByID)
	r.POST("/queries", controllers.CreateQuery)

	// Authenticated routes (token required)
	auth := r.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/me", controllers.Me)
	auth.PATCH("/updatePassword", controllers.UpdatePassword)

	auth.GET("/cart", controllers.GetCart)
	auth.POST("/cart", controllers.AddToCart)
	auth.DELETE("/cart/:id", controllers.RemoveFromCart)

	auth.POST("/orders", controllers.CreateOrder)
	auth.GET("/orders", controllers.GetOrders)
	auth.GET("/orders/:id", controllers.GetOrderByID)

	auth.POST("/repairs", controllers.CreateRepairJob)
	auth.GET("/repairs", controllers.GetRepairJobs)
	auth.GET("/repairs/:id", controllers.GetRepairJobByID)

	auth.GET("/quotes", controllers.GetQuotes)
	auth.POST("/quotes/:id/accept", controllers.AcceptQuote)
	auth.POST("/quotes/:id/reject", controllers.RejectQuote)

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(controllers.Adminizer())

	admin.GET("/users", controllers.GetUsers)
	admin.GET("/users/:id", controllers.GetUserByID)
	admin.DELETE("/users/:id", controllers.DeleteUser)

	admin.POST("/products", controllers.CreateProduct)
	admin.PUT("/products/:id", controllers.UpdateProduct)
	admin.DELETE("/products/:id", controllers.DeleteProduct)

	admin.GET("/orders", controllers.GetAllOrders)
	admin.PUT("/orders/:id", controllers.UpdateOrderStatus)

	admin.GET("/repairs", controllers.GetAllRepairJobs)
	admin.PUT("/repairs/:id", controllers.UpdateRepairJob)
	admin.POST("/repairs/:id/quotes", controllers.CreateQuote)

	admin.GET("/queries", controllers.GetQueries)
	admin.PUT("/queries/:id", controllers.AnswerQuery)

	log.Printf("Routes initialized")
}
