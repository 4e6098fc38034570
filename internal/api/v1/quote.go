package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vithu2008-CS/price-book-calculator/internal/calculator"
)

// QuoteRequest 报价请求
type QuoteRequest struct {
	Country        string  `json:"country"`
	Category       string  `json:"category"`
	FieldKey       string  `json:"fieldKey"`
	DistanceKm     float64 `json:"distanceKm"`
	OutOfHours     bool    `json:"outOfHours"`
	WeekendHoliday bool    `json:"weekendHoliday"`
}

// Quote 计算报价
// POST /api/quote
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// 按国家解析价格行；国家没选或查不到时走统一的必选项校验
	record, err := h.store.FindRecordByCountry(req.Country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.calc.Quote(record, calculator.QuoteInput{
		FieldKey:       req.FieldKey,
		Category:       req.Category,
		DistanceKm:     req.DistanceKm,
		OutOfHours:     req.OutOfHours,
		WeekendHoliday: req.WeekendHoliday,
	})
	if err != nil {
		if errors.Is(err, calculator.ErrIncompleteSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Select all required fields."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
