package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export 下载当前价格手册的工作簿快照
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	count, err := h.store.CountRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no price book loaded"})
		return
	}

	f, err := h.exporter.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="price-book.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		// 头已经发出去了，只能记录在响应中断
		_ = c.Error(err)
	}
}
