package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Vithu2008-CS/price-book-calculator/internal/calculator"
	"github.com/Vithu2008-CS/price-book-calculator/internal/config"
	"github.com/Vithu2008-CS/price-book-calculator/internal/exporter"
	"github.com/Vithu2008-CS/price-book-calculator/internal/selection"
	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

// Handler API 处理器
type Handler struct {
	store     *store.Store
	calc      *calculator.Calculator
	selection *selection.Store
	exporter  *exporter.Exporter
	rates     config.Rates
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, rates config.Rates) *Handler {
	return &Handler{
		store:     st,
		calc:      calculator.NewCalculator(rates),
		selection: selection.NewStore(),
		exporter:  exporter.NewExporter(st),
		rates:     rates,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 价格手册导入 / 导出
	router.POST("/import", h.Import)
	router.GET("/export", h.Export)

	// 选择列表
	router.GET("/regions", h.ListRegions)
	router.GET("/countries", h.ListCountries)
	router.GET("/categories", h.ListCategories)
	router.GET("/records", h.ListRecords)
	router.GET("/terms", h.ListTerms)
	router.GET("/cities", h.ListCities)

	// 级联选择状态
	router.GET("/selection", h.GetSelection)
	router.POST("/selection", h.UpdateSelection)

	// 报价
	router.POST("/quote", h.Quote)

	// 加成口径
	router.GET("/config", h.GetRates)
}
