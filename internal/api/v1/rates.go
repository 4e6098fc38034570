package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRates 获取生效的报价加成口径
// GET /api/config
func (h *Handler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"projectMarkup":  h.rates.ProjectMarkup,
		"outOfHours":     h.rates.OutOfHours,
		"weekendHoliday": h.rates.WeekendHoliday,
		"freeRadiusKm":   h.rates.FreeRadiusKm,
		"perKmRate":      h.rates.PerKmRate,
	})
}
