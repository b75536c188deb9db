package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phantomplay/backend/internal/history"
	"github.com/phantomplay/backend/internal/session"
)

type guestChatReq struct {
	UserInput      string `json:"user_input" binding:"required"`
	GuestSessionID string `json:"guest_session_id" binding:"required"`
}

type chatReq struct {
	UserInput string `json:"user_input" binding:"required"`
}

// GuestChat serves clients without an account. History lives in process
// memory under the client-supplied guest session id.
func (h *Handler) GuestChat(c *gin.Context) {
	var req guestChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "user_input and guest_session_id are required",
		})
		return
	}

	hist := h.Guests.History(req.GuestSessionID)
	reply, err := h.ChatSvc.Respond(c.Request.Context(), req.UserInput, hist)
	if err != nil {
		h.serverError(c, "guest chat failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

// Chat serves registered users. The session cookie selects the durable
// history; each stored turn gets a UTC timestamp.
func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_input is required"})
		return
	}

	sid, ok := session.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session, Please Sign In",
		})
		return
	}

	hist := history.Timestamped(h.Durable.History(sid))
	reply, err := h.ChatSvc.Respond(c.Request.Context(), req.UserInput, hist)
	if err != nil {
		h.serverError(c, "chat failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
