package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

// ListRegions 获取区域列表（去重、字典序）
// GET /api/regions
func (h *Handler) ListRegions(c *gin.Context) {
	regions, err := h.store.ListRegions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if regions == nil {
		regions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// ListCountries 获取某区域下的国家列表
// GET /api/countries?region=EMEA
func (h *Handler) ListCountries(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}

	countries, err := h.store.ListCountries(region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if countries == nil {
		countries = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// categoryView 类别及其可选字段
type categoryView struct {
	Name   string      `json:"name"`
	Fields []fieldView `json:"fields"`
}

// fieldView 字段键 + 展示名
type fieldView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ListCategories 获取类别配置（固定顺序）
// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories := make([]categoryView, 0, len(model.Categories))
	for _, cat := range model.Categories {
		fields := make([]fieldView, 0, len(cat.Fields))
		for _, key := range cat.Fields {
			fields = append(fields, fieldView{Key: key, Label: model.FieldLabel(key)})
		}
		categories = append(categories, categoryView{Name: cat.Name, Fields: fields})
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListRecords 获取价格行（可按区域/国家过滤）
// GET /api/records?region=EMEA&country=France
func (h *Handler) ListRecords(c *gin.Context) {
	opts := store.RecordQueryOptions{}
	if region := c.Query("region"); region != "" {
		opts.Region = &region
	}
	if country := c.Query("country"); country != "" {
		opts.Country = &country
	}

	records, err := h.store.ListRecords(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*model.PriceRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// ListTerms 获取条款列表
// GET /api/terms
func (h *Handler) ListTerms(c *gin.Context) {
	terms, err := h.store.GetTerms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if terms == nil {
		terms = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"terms": terms})
}

// ListCities 获取一线城市列表
// GET /api/cities
func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.store.GetTier1Cities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
