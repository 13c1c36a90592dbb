package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/titishya/fastfood-app/controllers"
	"github.com/titishya/fastfood-app/kds"
	"github.com/titishya/fastfood-app/middlewares"
	"github.com/titishya/fastfood-app/services"
	"github.com/titishya/fastfood-app/utils"
)

// SetupRouter wires middlewares, the API surface, the dashboard websocket and
// the static customer/manager pages.
func SetupRouter(svc *services.OrderService, hub *kds.Hub, publicDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Global rate limit (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	orderCtrl := controllers.NewOrderController(svc)
	paymentCtrl := controllers.NewPaymentController(svc)
	kdsCtrl := controllers.NewKDSController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Dashboard websocket (read-only observers)
	r.GET("/ws", kdsCtrl.DashboardHandler)

	api := r.Group("/api")
	{
		create := api.Group("/orders")
		create.Use(middlewares.NewStrictRateLimiter())
		{
			create.POST("", orderCtrl.CreateOrder)
		}

		api.GET("/orders", orderCtrl.GetOrders)
		api.GET("/orders/:id", orderCtrl.GetOrderByID)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		api.POST("/payments/confirm", paymentCtrl.ConfirmPayment)
	}

	// Customer and manager pages plus menu.json, served as plain files like
	// the rest of the public directory.
	if info, err := os.Stat(publicDir); err == nil && info.IsDir() {
		r.StaticFile("/", filepath.Join(publicDir, "index.html"))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method == http.MethodGet {
				path := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
				if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
					c.File(path)
					return
				}
			}
			c.Status(http.StatusNotFound)
		})
	} else {
		utils.InfoLogger.Printf("Public directory %q not found, serving API only", publicDir)
	}

	return r
}
