package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phantomplay/backend/internal/session"
	"github.com/phantomplay/backend/internal/users"
)

type signUpReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c *gin.Context) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	username := strings.TrimSpace(req.Username)
	email := users.NormalizeEmail(req.Email)
	password := req.Password

	if username == "" || email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All fields (username, email, password) are required",
		})
		return
	}

	exists, err := h.Users.EmailExists(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "sign-up email lookup failed", err)
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "User with this email already exists, Please Sign In",
		})
		return
	}

	sid := session.Issue(c)

	created, err := h.Users.Create(c.Request.Context(), sid, username, email, password)
	if err != nil {
		h.serverError(c, "sign-up insert failed", err)
		return
	}
	if !created {
		// lost a race on the unique email or session id
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create user in the database",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registered successfully, Start Chatting!"})
}

func (h *Handler) SignIn(c *gin.Context) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	email := users.NormalizeEmail(req.Email)

	exists, err := h.Users.EmailExists(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "sign-in email lookup failed", err)
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "User with this email doesn't exist, Please Sign Up",
		})
		return
	}

	okPw, err := h.Users.VerifyPassword(c.Request.Context(), email, req.Password)
	if err != nil {
		h.serverError(c, "sign-in password check failed", err)
		return
	}
	if !okPw {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}

	sid, err := h.Users.SessionIDByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "User with this email doesn't exist, Please Sign Up",
			})
			return
		}
		h.serverError(c, "sign-in session lookup failed", err)
		return
	}

	session.Bind(c, sid)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in Successfully! Continue Chatting"})
}

func (h *Handler) CheckSession(c *gin.Context) {
	_, ok := session.Current(c)
	c.JSON(http.StatusOK, gin.H{"new_session": !ok})
}

func (h *Handler) Logout(c *gin.Context) {
	session.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
