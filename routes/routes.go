package routes

import (
	"net/http"

	"pulse/admin"
	"pulse/auth"
	"pulse/middleware"
	"pulse/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/admin/*filepath", http.Dir("static/admin"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
}

func AddAdminRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	// one param route covers dashboard, health, and every entity listing
	router.GET("/api/admin/:section", rateLimiter.Limit(middleware.Authenticate(admin.GetAdminSection)))
}
