package calculator

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vithu2008-CS/price-book-calculator/internal/config"
	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
)

// ErrIncompleteSelection 必选项未齐：国家没有匹配到价格行，或者没有选择价格字段
// 属于用户可自行纠正的输入问题，调用方应提示补全选择后重试
var ErrIncompleteSelection = errors.New("select all required fields")

// QuoteInput 一次报价的输入
type QuoteInput struct {
	FieldKey       string  `json:"fieldKey"`       // 价格字段键（见 model.PriceColumns）
	Category       string  `json:"category"`       // 类别展示名
	DistanceKm     float64 `json:"distanceKm"`     // 上门距离（公里）
	OutOfHours     bool    `json:"outOfHours"`     // 非工作时间
	WeekendHoliday bool    `json:"weekendHoliday"` // 周末/节假日
}

// QuoteResult 报价结果
// Price 固定两位小数（"1000.00" 而不是 "1000"），货币缺失时为空串
type QuoteResult struct {
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

// Calculator 报价计算器
type Calculator struct {
	rates config.Rates
}

// NewCalculator 创建报价计算器
func NewCalculator(rates config.Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Quote 计算最终报价
//
// 加成顺序固定，乘法加成先复合、路费最后加，顺序变了结果就不对：
//  1. 取基础价，字段缺失/非数值按 0 处理
//  2. 项目类（类别名含 "Project"）x 项目加成
//  3. 非工作时间 x 加班倍率
//  4. 周末/节假日 x 节假日倍率
//  5. 超出免费半径的里程按每公里加价，线性叠加
func (c *Calculator) Quote(record *model.PriceRecord, in QuoteInput) (*QuoteResult, error) {
	if record == nil || strings.TrimSpace(in.FieldKey) == "" {
		return nil, ErrIncompleteSelection
	}

	price := decimal.Zero
	if v, ok := record.Field(in.FieldKey); ok && v != nil {
		price = decimal.NewFromFloat(*v)
	}

	if strings.Contains(in.Category, "Project") {
		price = price.Mul(decimal.NewFromFloat(c.rates.ProjectMarkup))
	}

	if in.OutOfHours {
		price = price.Mul(decimal.NewFromFloat(c.rates.OutOfHours))
	}
	if in.WeekendHoliday {
		price = price.Mul(decimal.NewFromFloat(c.rates.WeekendHoliday))
	}

	if in.DistanceKm > c.rates.FreeRadiusKm {
		surcharge := decimal.NewFromFloat(in.DistanceKm - c.rates.FreeRadiusKm).
			Mul(decimal.NewFromFloat(c.rates.PerKmRate))
		price = price.Add(surcharge)
	}

	return &QuoteResult{
		Price:    price.StringFixed(2),
		Currency: record.CurrencyValue(),
	}, nil
}
