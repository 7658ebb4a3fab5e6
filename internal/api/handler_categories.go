package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
)

// GetCategories handles GET /categories.
func (h *Handler) GetCategories(c *gin.Context) {
	items, err := h.manuals(c).Categories()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchCategories handles GET /categories/search.
func (h *Handler) SearchCategories(c *gin.Context) {
	q, ok := searchQuery(c)
	if !ok {
		return
	}
	items, err := h.manuals(c).SearchCategories(q)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PostCategory handles POST /categories.
func (h *Handler) PostCategory(c *gin.Context) {
	var req schema.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.manuals(c).AddCategory(req)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// PutCategory handles PUT /categories/:category_id.
func (h *Handler) PutCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	var req schema.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.manuals(c).UpdateCategory(id, req)
	if err != nil {
		serverError(c, err)
		return
	}
	if updated == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategory handles DELETE /categories/:category_id.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	if !h.manuals(c).DeleteCategory(id) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteCategories handles DELETE /categories.
func (h *Handler) DeleteCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.manuals(c).DeleteCategories())
}

// AddAllCategories handles POST /categories/add_all, seeding from fixtures.
func (h *Handler) AddAllCategories(c *gin.Context) {
	if err := h.manuals(c).AddAllCategories(); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
