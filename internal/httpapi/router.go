package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/phantomplay/backend/internal/config"
	"github.com/phantomplay/backend/internal/httpapi/handlers"
	"github.com/phantomplay/backend/internal/httpapi/middleware"
	"github.com/phantomplay/backend/internal/logger"
)

func NewRouter(h *handlers.Handler, cfg *config.Config, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/healthz", h.Healthz)

	r.POST("/guest-chat", h.GuestChat)
	r.POST("/chat", h.Chat)

	r.GET("/check-session", h.CheckSession)
	r.POST("/sign-up", h.SignUp)
	r.POST("/sign-in", h.SignIn)
	r.DELETE("/logout", h.Logout)

	return r
}
