package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

// sheetName 导出 Sheet 名
const sheetName = "Price Book"

// cityMarkerTerm 城市标记行在条款里的去前缀形态
// 导出时城市区块紧跟在这一条后面写出，保持标记行在条款中的原位置
const cityMarkerTerm = "Tier 1 Cities"

// Exporter 价格手册导出器
// 把当前入库的手册按原始布局写回工作簿：三行表头 + 数据区 + 尾部注释区
// 导出的文件可以被解析器原样读回
type Exporter struct {
	store *store.Store
}

// NewExporter 创建导出器
func NewExporter(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

// Export 导出当前价格手册
func (e *Exporter) Export() (*excelize.File, error) {
	records, err := e.store.ListRecords(store.RecordQueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	terms, err := e.store.GetTerms()
	if err != nil {
		return nil, fmt.Errorf("failed to load terms: %w", err)
	}
	cities, err := e.store.GetTier1Cities()
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	rowNo := 1
	writeRow := func(cells []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNo)
		if err != nil {
			return err
		}
		rowNo++
		return f.SetSheetRow(sheetName, cell, &cells)
	}

	// 前三行：标题、空行、列头（解析器固定跳过前三行）
	if err := writeRow([]interface{}{"Global Price Book"}); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeRow([]interface{}{}); err != nil {
		_ = f.Close()
		return nil, err
	}
	header := []interface{}{"Region", "Country", "Supplier", "Currency", "Payment Terms"}
	for _, key := range model.PriceColumns {
		header = append(header, model.FieldLabel(key))
	}
	if err := writeRow(header); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, rec := range records {
		if err := writeRow(recordRow(rec)); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	// 标记行之后的 * 行仍是普通条款，解析时不会中断城市收集，
	// 所以城市区块紧跟标记行写出，标记行在条款中的位置保持不变
	writeCities := func() error {
		for _, city := range cities {
			if err := writeRow([]interface{}{city}); err != nil {
				return err
			}
		}
		return nil
	}

	citiesWritten := false
	for _, term := range terms {
		if err := writeRow([]interface{}{"* " + term}); err != nil {
			_ = f.Close()
			return nil, err
		}
		if term == cityMarkerTerm && !citiesWritten {
			if err := writeCities(); err != nil {
				_ = f.Close()
				return nil, err
			}
			citiesWritten = true
		}
	}

	// 城市存在但条款里没有标记行时（理论上不会出现），补一个标记行兜底
	if !citiesWritten && len(cities) > 0 {
		if err := writeRow([]interface{}{"* " + cityMarkerTerm}); err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := writeCities(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// recordRow 一条价格记录转成 41 列的行
func recordRow(rec *model.PriceRecord) []interface{} {
	row := []interface{}{
		cellString(rec.Region),
		cellString(rec.Country),
		cellString(rec.Supplier),
		cellString(rec.Currency),
		cellString(rec.PaymentTerms),
	}
	for _, key := range model.PriceColumns {
		v, _ := rec.Field(key)
		if v == nil {
			row = append(row, nil)
		} else {
			row = append(row, *v)
		}
	}
	return row
}

func cellString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
