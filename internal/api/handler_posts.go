package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
)

// GetPosts handles GET /posts.
func (h *Handler) GetPosts(c *gin.Context) {
	items, err := h.posts(c).Posts()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPost handles GET /posts/:post_id.
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	post, err := h.posts(c).Post(id)
	if err != nil {
		serverError(c, err)
		return
	}
	if post == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// SearchPosts handles GET /posts/search.
func (h *Handler) SearchPosts(c *gin.Context) {
	q, ok := searchQuery(c)
	if !ok {
		return
	}
	items, err := h.posts(c).SearchPosts(q)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PostPost handles POST /posts.
func (h *Handler) PostPost(c *gin.Context) {
	var req schema.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.posts(c).AddPost(req)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// PutPost handles PUT /posts/:post_id.
func (h *Handler) PutPost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	var req schema.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.posts(c).UpdatePost(id, req)
	if err != nil {
		serverError(c, err)
		return
	}
	if updated == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePost handles DELETE /posts/:post_id.
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	if !h.posts(c).DeletePost(id) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, true)
}
