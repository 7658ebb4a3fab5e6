package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
)

// ReceiveSensorData handles POST /sensors/receive_data. Readings are
// logged and echoed back; nothing is persisted.
func (h *Handler) ReceiveSensorData(c *gin.Context) {
	var req schema.SensorData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, s := range req.Sensors {
		log.Printf("sensor %s at %s: status=%s battery=%.1f temperature=%.1f",
			s.Name, s.Address, s.Status, s.Battery, s.Temperature)
	}
	c.JSON(http.StatusOK, req)
}
