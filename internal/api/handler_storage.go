package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStorageLocations handles GET /storage/locations, returning each
// location with its equipment.
func (h *Handler) GetStorageLocations(c *gin.Context) {
	items, err := h.storage(c).NestedLocations()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetEquipment handles GET /storage/equipment.
func (h *Handler) GetEquipment(c *gin.Context) {
	items, err := h.storage(c).Equipment()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddAllStorage handles POST /storage/add_all, seeding from fixtures.
func (h *Handler) AddAllStorage(c *gin.Context) {
	if err := h.storage(c).AddAll(); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
