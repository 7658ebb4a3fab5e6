package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
)

// GetMenu handles GET /menu.
func (h *Handler) GetMenu(c *gin.Context) {
	items, err := h.menu(c).MenuItems()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PostMenuItem handles POST /menu.
func (h *Handler) PostMenuItem(c *gin.Context) {
	var req schema.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.menu(c).AddMenuItem(req)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}
