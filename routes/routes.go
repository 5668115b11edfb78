package routes

import (
	"sharee/auth"
	"sharee/middleware"
	"sharee/orders"
	"sharee/products"
	"sharee/ratelim"
	"sharee/videos"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", h.Logout)
}

func AddProductRoutes(router *httprouter.Router, h *products.Handler, guard *middleware.AdminGuard) {
	router.GET("/api/products", h.List)
	router.GET("/api/products/:id", h.Get)
	router.POST("/api/products", guard.RequireAdmin(h.Create))
	router.DELETE("/api/products/:id", guard.RequireAdmin(h.Delete))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, guard *middleware.AdminGuard, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(h.Place))
	router.GET("/api/orders", guard.RequireAdmin(h.List))
	router.PATCH("/api/orders/:id", guard.RequireAdmin(h.UpdateStatus))
	router.DELETE("/api/orders/:id", guard.RequireAdmin(h.Delete))
	router.GET("/api/orders/:id/invoice", guard.RequireAdmin(h.Invoice))
}

func AddVideoRoutes(router *httprouter.Router, h *videos.Handler, guard *middleware.AdminGuard) {
	router.GET("/api/video", h.Latest)
	router.POST("/api/video", guard.RequireAdmin(h.Replace))
}
