package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
)

// GetGroups handles GET /groups, optionally filtered by category_id.
func (h *Handler) GetGroups(c *gin.Context) {
	svc := h.manuals(c)

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		items, err := svc.GroupsByCategory(categoryID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := svc.Groups()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchGroups handles GET /groups/search.
func (h *Handler) SearchGroups(c *gin.Context) {
	q, ok := searchQuery(c)
	if !ok {
		return
	}
	items, err := h.manuals(c).SearchGroups(q)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PostGroup handles POST /groups.
func (h *Handler) PostGroup(c *gin.Context) {
	var req schema.Group
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.manuals(c).AddGroup(req)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// PutGroup handles PUT /groups/:group_id.
func (h *Handler) PutGroup(c *gin.Context) {
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	var req schema.Group
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.manuals(c).UpdateGroup(id, req)
	if err != nil {
		serverError(c, err)
		return
	}
	if updated == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGroup handles DELETE /groups/:group_id.
func (h *Handler) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	if !h.manuals(c).DeleteGroup(id) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteGroups handles DELETE /groups.
func (h *Handler) DeleteGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.manuals(c).DeleteGroups())
}

// AddAllGroups handles POST /groups/add_all, seeding from fixtures.
func (h *Handler) AddAllGroups(c *gin.Context) {
	if err := h.manuals(c).AddAllGroups(); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
