package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetConverters handles GET /converters.
func (h *Handler) GetConverters(c *gin.Context) {
	items, err := h.converters(c).Converters()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetConvertersPaginated handles GET /converters/paginated.
func (h *Handler) GetConvertersPaginated(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "page_size must be between 1 and 100"})
		return
	}

	result, err := h.converters(c).ConvertersPaginated(page, pageSize)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddAllConverters handles POST /converters/add_all, seeding the full
// hierarchy from fixtures.
func (h *Handler) AddAllConverters(c *gin.Context) {
	if err := h.converters(c).AddAll(); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteAllConverters handles DELETE /converters/delete_all. The response
// maps each table to whether it had rows to delete.
func (h *Handler) DeleteAllConverters(c *gin.Context) {
	c.JSON(http.StatusOK, h.converters(c).DeleteAll())
}

func (h *Handler) deleteByID(c *gin.Context, param, noun string, del func(int64) bool) {
	id, ok := pathID(c, param)
	if !ok {
		return
	}
	if !del(id) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
		return
	}
	c.JSON(http.StatusOK, true)
}

// DeleteMillShop handles DELETE /converters/mill_shops/:mill_shop_id.
func (h *Handler) DeleteMillShop(c *gin.Context) {
	h.deleteByID(c, "mill_shop_id", "mill shop", h.converters(c).DeleteMillShop)
}

// DeleteProductionLine handles DELETE /converters/production_lines/:production_line_id.
func (h *Handler) DeleteProductionLine(c *gin.Context) {
	h.deleteByID(c, "production_line_id", "production line", h.converters(c).DeleteProductionLine)
}

// DeleteLocation handles DELETE /converters/locations/:location_id.
func (h *Handler) DeleteLocation(c *gin.Context) {
	h.deleteByID(c, "location_id", "location", h.converters(c).DeleteLocation)
}

// DeleteCabinet handles DELETE /converters/cabinets/:cabinet_id.
func (h *Handler) DeleteCabinet(c *gin.Context) {
	h.deleteByID(c, "cabinet_id", "cabinet", h.converters(c).DeleteCabinet)
}

// DeleteConverter handles DELETE /converters/:converter_id.
func (h *Handler) DeleteConverter(c *gin.Context) {
	h.deleteByID(c, "converter_id", "converter", h.converters(c).DeleteConverter)
}

// DeleteUnit handles DELETE /converters/units/:unit_id.
func (h *Handler) DeleteUnit(c *gin.Context) {
	h.deleteByID(c, "unit_id", "unit", h.converters(c).DeleteUnit)
}
