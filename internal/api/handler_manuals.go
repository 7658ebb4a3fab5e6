package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
)

// GetManuals handles GET /manuals.
func (h *Handler) GetManuals(c *gin.Context) {
	items, err := h.manuals(c).Manuals()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetNestedManuals handles GET /manuals/nested, returning the full
// category -> group -> manual tree.
func (h *Handler) GetNestedManuals(c *gin.Context) {
	items, err := h.manuals(c).NestedManuals()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchManuals handles GET /manuals/search.
func (h *Handler) SearchManuals(c *gin.Context) {
	q, ok := searchQuery(c)
	if !ok {
		return
	}
	items, err := h.manuals(c).SearchManuals(q)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PostManual handles POST /manuals. A missing cover image URL is derived
// from the file URL.
func (h *Handler) PostManual(c *gin.Context) {
	var req schema.Manual
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.manuals(c).AddManual(req)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// PutManual handles PUT /manuals/:manual_id.
func (h *Handler) PutManual(c *gin.Context) {
	id, ok := pathID(c, "manual_id")
	if !ok {
		return
	}
	var req schema.Manual
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.manuals(c).UpdateManual(id, req)
	if err != nil {
		serverError(c, err)
		return
	}
	if updated == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "manual not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteManual handles DELETE /manuals/:manual_id.
func (h *Handler) DeleteManual(c *gin.Context) {
	id, ok := pathID(c, "manual_id")
	if !ok {
		return
	}
	if !h.manuals(c).DeleteManual(id) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "manual not found"})
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteManuals handles DELETE /manuals.
func (h *Handler) DeleteManuals(c *gin.Context) {
	c.JSON(http.StatusOK, h.manuals(c).DeleteManuals())
}

// UploadManual handles POST /manuals/upload: the PDF goes to the object
// store and its first page becomes the cover image.
func (h *Handler) UploadManual(c *gin.Context) {
	if h.store == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "object storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("manual")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "manual file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		serverError(c, err)
		return
	}
	defer f.Close()

	uploaded, err := h.manuals(c).UploadManual(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploaded)
}

// AddAllManuals handles POST /manuals/add_all, seeding from fixtures.
func (h *Handler) AddAllManuals(c *gin.Context) {
	if err := h.manuals(c).AddAllManuals(); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
