package model

import "strings"

// PriceRecord 价格表中的一行（一个国家/供应商的报价）
// 所有字段都可能缺失：空单元格保持为 nil，不会折算成 0
type PriceRecord struct {
	ID           int64   `json:"id"`
	Region       *string `json:"region"`
	Country      *string `json:"country"`
	Supplier     *string `json:"supplier"`
	Currency     *string `json:"currency"`
	PaymentTerms *string `json:"payment_terms"`

	// 年度驻场费率（含/不含 backfill，L1-L5）
	L1WithBackfillYearly    *float64 `json:"l1_with_backfill_yearly"`
	L1WithoutBackfillYearly *float64 `json:"l1_without_backfill_yearly"`
	L2WithBackfillYearly    *float64 `json:"l2_with_backfill_yearly"`
	L2WithoutBackfillYearly *float64 `json:"l2_without_backfill_yearly"`
	L3WithBackfillYearly    *float64 `json:"l3_with_backfill_yearly"`
	L3WithoutBackfillYearly *float64 `json:"l3_without_backfill_yearly"`
	L4WithBackfillYearly    *float64 `json:"l4_with_backfill_yearly"`
	L4WithoutBackfillYearly *float64 `json:"l4_without_backfill_yearly"`
	L5WithBackfillYearly    *float64 `json:"l5_with_backfill_yearly"`
	L5WithoutBackfillYearly *float64 `json:"l5_without_backfill_yearly"`

	// 上门服务费率（全天/半天，L1-L3）
	FullDayL1Daily *float64 `json:"full_day_l1_daily"`
	FullDayL2Daily *float64 `json:"full_day_l2_daily"`
	FullDayL3Daily *float64 `json:"full_day_l3_daily"`
	HalfDayL1Daily *float64 `json:"half_day_l1_daily"`
	HalfDayL2Daily *float64 `json:"half_day_l2_daily"`
	HalfDayL3Daily *float64 `json:"half_day_l3_daily"`

	// 按 SLA 窗口的 Dispatch 费率
	Dispatch9x5x4          *float64 `json:"dispatch_9x5x4"`
	Dispatch24x7x4         *float64 `json:"dispatch_24x7x4"`
	DispatchSBD            *float64 `json:"dispatch_sbd"`
	DispatchNBD            *float64 `json:"dispatch_nbd"`
	Dispatch2BD            *float64 `json:"dispatch_2bd"`
	Dispatch3BD            *float64 `json:"dispatch_3bd"`
	DispatchAdditionalHour *float64 `json:"dispatch_additional_hour"`

	// 按工作日 SLA 的 IMAC 费率
	IMAC2BD *float64 `json:"imac_2bd"`
	IMAC3BD *float64 `json:"imac_3bd"`
	IMAC4BD *float64 `json:"imac_4bd"`

	// 短期/长期项目月费率（L1-L5）
	ShortTermL1Monthly *float64 `json:"short_term_l1_monthly"`
	ShortTermL2Monthly *float64 `json:"short_term_l2_monthly"`
	ShortTermL3Monthly *float64 `json:"short_term_l3_monthly"`
	ShortTermL4Monthly *float64 `json:"short_term_l4_monthly"`
	ShortTermL5Monthly *float64 `json:"short_term_l5_monthly"`
	LongTermL1Monthly  *float64 `json:"long_term_l1_monthly"`
	LongTermL2Monthly  *float64 `json:"long_term_l2_monthly"`
	LongTermL3Monthly  *float64 `json:"long_term_l3_monthly"`
	LongTermL4Monthly  *float64 `json:"long_term_l4_monthly"`
	LongTermL5Monthly  *float64 `json:"long_term_l5_monthly"`

	RowNo      int    `json:"rowNo"`      // 源表行号（1 起）
	SourceFile string `json:"sourceFile"` // 来源文件名
}

// PriceColumns 36 个价格字段键，严格按价格表 5-40 列的顺序排列
// 解析、入库、导出都以这份声明为准，避免列序在多处转录出错
var PriceColumns = []string{
	"l1_with_backfill_yearly",
	"l1_without_backfill_yearly",
	"l2_with_backfill_yearly",
	"l2_without_backfill_yearly",
	"l3_with_backfill_yearly",
	"l3_without_backfill_yearly",
	"l4_with_backfill_yearly",
	"l4_without_backfill_yearly",
	"l5_with_backfill_yearly",
	"l5_without_backfill_yearly",
	"full_day_l1_daily",
	"full_day_l2_daily",
	"full_day_l3_daily",
	"half_day_l1_daily",
	"half_day_l2_daily",
	"half_day_l3_daily",
	"dispatch_9x5x4",
	"dispatch_24x7x4",
	"dispatch_sbd",
	"dispatch_nbd",
	"dispatch_2bd",
	"dispatch_3bd",
	"dispatch_additional_hour",
	"imac_2bd",
	"imac_3bd",
	"imac_4bd",
	"short_term_l1_monthly",
	"short_term_l2_monthly",
	"short_term_l3_monthly",
	"short_term_l4_monthly",
	"short_term_l5_monthly",
	"long_term_l1_monthly",
	"long_term_l2_monthly",
	"long_term_l3_monthly",
	"long_term_l4_monthly",
	"long_term_l5_monthly",
}

// Category 报价类别：展示名称 + 所属字段键（按列顺序）
type Category struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Categories 类别配置，编译期固定，与文档内容无关
var Categories = []Category{
	{Name: "Yearly Rates", Fields: PriceColumns[0:10]},
	{Name: "Visit Rates", Fields: PriceColumns[10:16]},
	{Name: "Dispatch Rates", Fields: PriceColumns[16:23]},
	{Name: "IMAC Pricing", Fields: PriceColumns[23:26]},
	{Name: "Short Term Project", Fields: PriceColumns[26:31]},
	{Name: "Long Term Project", Fields: PriceColumns[31:36]},
}

// CategoryFields 按名称查类别字段
func CategoryFields(name string) ([]string, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c.Fields, true
		}
	}
	return nil, false
}

// FieldLabel 字段键转展示名："l1_with_backfill_yearly" -> "L1 WITH BACKFILL YEARLY"
func FieldLabel(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// Field 按字段键取价格值；未知键返回 (nil, false)
func (r *PriceRecord) Field(key string) (*float64, bool) {
	switch key {
	case "l1_with_backfill_yearly":
		return r.L1WithBackfillYearly, true
	case "l1_without_backfill_yearly":
		return r.L1WithoutBackfillYearly, true
	case "l2_with_backfill_yearly":
		return r.L2WithBackfillYearly, true
	case "l2_without_backfill_yearly":
		return r.L2WithoutBackfillYearly, true
	case "l3_with_backfill_yearly":
		return r.L3WithBackfillYearly, true
	case "l3_without_backfill_yearly":
		return r.L3WithoutBackfillYearly, true
	case "l4_with_backfill_yearly":
		return r.L4WithBackfillYearly, true
	case "l4_without_backfill_yearly":
		return r.L4WithoutBackfillYearly, true
	case "l5_with_backfill_yearly":
		return r.L5WithBackfillYearly, true
	case "l5_without_backfill_yearly":
		return r.L5WithoutBackfillYearly, true
	case "full_day_l1_daily":
		return r.FullDayL1Daily, true
	case "full_day_l2_daily":
		return r.FullDayL2Daily, true
	case "full_day_l3_daily":
		return r.FullDayL3Daily, true
	case "half_day_l1_daily":
		return r.HalfDayL1Daily, true
	case "half_day_l2_daily":
		return r.HalfDayL2Daily, true
	case "half_day_l3_daily":
		return r.HalfDayL3Daily, true
	case "dispatch_9x5x4":
		return r.Dispatch9x5x4, true
	case "dispatch_24x7x4":
		return r.Dispatch24x7x4, true
	case "dispatch_sbd":
		return r.DispatchSBD, true
	case "dispatch_nbd":
		return r.DispatchNBD, true
	case "dispatch_2bd":
		return r.Dispatch2BD, true
	case "dispatch_3bd":
		return r.Dispatch3BD, true
	case "dispatch_additional_hour":
		return r.DispatchAdditionalHour, true
	case "imac_2bd":
		return r.IMAC2BD, true
	case "imac_3bd":
		return r.IMAC3BD, true
	case "imac_4bd":
		return r.IMAC4BD, true
	case "short_term_l1_monthly":
		return r.ShortTermL1Monthly, true
	case "short_term_l2_monthly":
		return r.ShortTermL2Monthly, true
	case "short_term_l3_monthly":
		return r.ShortTermL3Monthly, true
	case "short_term_l4_monthly":
		return r.ShortTermL4Monthly, true
	case "short_term_l5_monthly":
		return r.ShortTermL5Monthly, true
	case "long_term_l1_monthly":
		return r.LongTermL1Monthly, true
	case "long_term_l2_monthly":
		return r.LongTermL2Monthly, true
	case "long_term_l3_monthly":
		return r.LongTermL3Monthly, true
	case "long_term_l4_monthly":
		return r.LongTermL4Monthly, true
	case "long_term_l5_monthly":
		return r.LongTermL5Monthly, true
	}
	return nil, false
}

// SetField 按字段键写价格值；未知键忽略
func (r *PriceRecord) SetField(key string, v *float64) {
	switch key {
	case "l1_with_backfill_yearly":
		r.L1WithBackfillYearly = v
	case "l1_without_backfill_yearly":
		r.L1WithoutBackfillYearly = v
	case "l2_with_backfill_yearly":
		r.L2WithBackfillYearly = v
	case "l2_without_backfill_yearly":
		r.L2WithoutBackfillYearly = v
	case "l3_with_backfill_yearly":
		r.L3WithBackfillYearly = v
	case "l3_without_backfill_yearly":
		r.L3WithoutBackfillYearly = v
	case "l4_with_backfill_yearly":
		r.L4WithBackfillYearly = v
	case "l4_without_backfill_yearly":
		r.L4WithoutBackfillYearly = v
	case "l5_with_backfill_yearly":
		r.L5WithBackfillYearly = v
	case "l5_without_backfill_yearly":
		r.L5WithoutBackfillYearly = v
	case "full_day_l1_daily":
		r.FullDayL1Daily = v
	case "full_day_l2_daily":
		r.FullDayL2Daily = v
	case "full_day_l3_daily":
		r.FullDayL3Daily = v
	case "half_day_l1_daily":
		r.HalfDayL1Daily = v
	case "half_day_l2_daily":
		r.HalfDayL2Daily = v
	case "half_day_l3_daily":
		r.HalfDayL3Daily = v
	case "dispatch_9x5x4":
		r.Dispatch9x5x4 = v
	case "dispatch_24x7x4":
		r.Dispatch24x7x4 = v
	case "dispatch_sbd":
		r.DispatchSBD = v
	case "dispatch_nbd":
		r.DispatchNBD = v
	case "dispatch_2bd":
		r.Dispatch2BD = v
	case "dispatch_3bd":
		r.Dispatch3BD = v
	case "dispatch_additional_hour":
		r.DispatchAdditionalHour = v
	case "imac_2bd":
		r.IMAC2BD = v
	case "imac_3bd":
		r.IMAC3BD = v
	case "imac_4bd":
		r.IMAC4BD = v
	case "short_term_l1_monthly":
		r.ShortTermL1Monthly = v
	case "short_term_l2_monthly":
		r.ShortTermL2Monthly = v
	case "short_term_l3_monthly":
		r.ShortTermL3Monthly = v
	case "short_term_l4_monthly":
		r.ShortTermL4Monthly = v
	case "short_term_l5_monthly":
		r.ShortTermL5Monthly = v
	case "long_term_l1_monthly":
		r.LongTermL1Monthly = v
	case "long_term_l2_monthly":
		r.LongTermL2Monthly = v
	case "long_term_l3_monthly":
		r.LongTermL3Monthly = v
	case "long_term_l4_monthly":
		r.LongTermL4Monthly = v
	case "long_term_l5_monthly":
		r.LongTermL5Monthly = v
	}
}

// RegionValue 去壳取 region，缺失时返回空串
func (r *PriceRecord) RegionValue() string {
	if r.Region == nil {
		return ""
	}
	return *r.Region
}

// CountryValue 去壳取 country，缺失时返回空串
func (r *PriceRecord) CountryValue() string {
	if r.Country == nil {
		return ""
	}
	return *r.Country
}

// CurrencyValue 去壳取 currency，缺失时返回空串
func (r *PriceRecord) CurrencyValue() string {
	if r.Currency == nil {
		return ""
	}
	return *r.Currency
}

// ExtractionResult 一次解析的完整结果，整体产出、整体替换
type ExtractionResult struct {
	Records     []*PriceRecord `json:"records"`
	Terms       []string       `json:"terms"`
	Tier1Cities []string       `json:"tier1Cities"`
	Regions     []string       `json:"regions"` // 去重排序后的可选区域
}
