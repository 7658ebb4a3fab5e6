package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/mw"
	"aedb-backend/internal/schema"
	"aedb-backend/internal/service"
)

// PostToken handles POST /token. Credentials arrive as form fields
// username and password; the username is the account email.
func (h *Handler) PostToken(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	tok, err := h.auth(c).Authenticate(email, password)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	case err != nil:
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tok)
}

// PostUser handles POST /users, registering a new account.
func (h *Handler) PostUser(c *gin.Context) {
	var req schema.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth(c).CreateUser(req)
	if errors.Is(err, service.ErrEmailTaken) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetMe handles GET /users/me, echoing the identity carried by the token.
func (h *Handler) GetMe(c *gin.Context) {
	user, ok := mw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
