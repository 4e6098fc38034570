package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
	"github.com/Vithu2008-CS/price-book-calculator/internal/selection"
)

// GetSelection 获取当前级联选择
// GET /api/selection
func (h *Handler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.selection.Get())
}

// UpdateSelection 部分更新级联选择
// POST /api/selection
// 上游字段变更会清空下游选择：region -> country/category/field，category -> field
func (h *Handler) UpdateSelection(c *gin.Context) {
	var patch selection.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// 类别与字段键只接受编译期配置里的值
	if patch.Category != nil && *patch.Category != "" {
		if _, ok := model.CategoryFields(*patch.Category); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
	}
	if patch.FieldKey != nil && *patch.FieldKey != "" {
		rec := model.PriceRecord{}
		if _, ok := rec.Field(*patch.FieldKey); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field key"})
			return
		}
	}

	c.JSON(http.StatusOK, h.selection.Apply(patch))
}
