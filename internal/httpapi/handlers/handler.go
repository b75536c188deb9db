package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phantomplay/backend/internal/chat"
	"github.com/phantomplay/backend/internal/history"
	"github.com/phantomplay/backend/internal/httpapi/middleware"
	"github.com/phantomplay/backend/internal/logger"
	"github.com/phantomplay/backend/internal/users"
)

type Handler struct {
	Users   *users.Repo
	Guests  *history.MemoryStore
	Durable *history.SQLStore
	ChatSvc *chat.Service
	Log     *logger.Logger
}

func New(userRepo *users.Repo, guests *history.MemoryStore, durable *history.SQLStore, chatSvc *chat.Service, log *logger.Logger) *Handler {
	return &Handler{
		Users:   userRepo,
		Guests:  guests,
		Durable: durable,
		ChatSvc: chatSvc,
		Log:     log.With("component", "handlers"),
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serverError hides internals from the client and logs them with the
// request id.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.Log.Error(msg,
		"request_id", c.GetString(middleware.RequestIDKey),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
