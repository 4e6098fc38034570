package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized bool   `json:"initialized"` // 是否已加载价格手册
	RecordCount int    `json:"recordCount"` // 价格行数
	TermCount   int    `json:"termCount"`   // 条款条数
	CityCount   int    `json:"cityCount"`   // 一线城市条数
	SourceFile  string `json:"sourceFile"`  // 当前手册的文件名
	ImportedAt  string `json:"importedAt"`  // 最近导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	recordCount, err := h.store.CountRecords()
	if err != nil {
		recordCount = 0
	}
	termCount, err := h.store.CountTerms()
	if err != nil {
		termCount = 0
	}
	cityCount, err := h.store.CountTier1Cities()
	if err != nil {
		cityCount = 0
	}

	sourceFile, _ := h.store.GetConfig(store.ConfigKeySourceFile)
	importedAt, _ := h.store.GetConfig(store.ConfigKeyImportedAt)

	c.JSON(http.StatusOK, StatusResponse{
		Initialized: recordCount > 0,
		RecordCount: recordCount,
		TermCount:   termCount,
		CityCount:   cityCount,
		SourceFile:  sourceFile,
		ImportedAt:  importedAt,
	})
}
