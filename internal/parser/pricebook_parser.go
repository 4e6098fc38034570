package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
)

const (
	// headerRowCount 前三行是标题与表头，无条件跳过
	headerRowCount = 3
	// minDataCells 数据行至少要有的单元格数，不足视为表格结束
	minDataCells = 5
	// cityListMarker 一线城市列表的标记行前缀（区分大小写）
	cityListMarker = "* Tier 1 Cities"
)

// PriceBookParser 价格表解析器
// 把一个 Sheet 按固定 41 列布局切成三段：价格表、条款、一线城市列表
type PriceBookParser struct{}

// NewPriceBookParser 创建价格表解析器
func NewPriceBookParser() *PriceBookParser {
	return &PriceBookParser{}
}

// ExtractWorkbook 解析工作簿的第一个 Sheet
// 工作簿没有 Sheet、Sheet 不可读或首个 Sheet 为空时返回错误，不产出部分结果
// 空 Sheet 视为解析失败而不是零记录结果，调用方保留旧数据
func (p *PriceBookParser) ExtractWorkbook(f *excelize.File) (*model.ExtractionResult, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return p.Extract(rows), nil
}

// Extract 提取价格行、条款与一线城市列表
// 纯函数：不做 I/O，不修改输入，重复调用结果一致
func (p *PriceBookParser) Extract(rows [][]string) *model.ExtractionResult {
	records, dataEnd := p.extractRecords(rows)
	trailing := rows[dataEnd:]

	return &model.ExtractionResult{
		Records:     records,
		Terms:       extractTerms(trailing),
		Tier1Cities: extractTier1Cities(trailing),
		Regions:     distinctRegions(records),
	}
}

// extractRecords 从第 4 行开始扫描价格表，返回保留的记录与表格结束下标
// 结束条件：单元格不足 5 个 / 首格为空 / 首格以 * 开头（尾部注释区的哨兵约定，
// 即使出现在表格中间也同样生效）
func (p *PriceBookParser) extractRecords(rows [][]string) ([]*model.PriceRecord, int) {
	dataEnd := len(rows)
	var records []*model.PriceRecord

	for i := headerRowCount; i < len(rows); i++ {
		row := rows[i]
		if len(row) < minDataCells || row[0] == "" || strings.HasPrefix(row[0], "*") {
			dataEnd = i
			break
		}

		// region 为空（含纯空白）的行是残缺行，比如表尾的免责声明，丢弃
		if rec := parsePriceRow(row, i+1); rec != nil {
			records = append(records, rec)
		}
	}

	return records, dataEnd
}

// parsePriceRow 按固定列布局映射一行：0-4 文本列，5-40 价格列
func parsePriceRow(row []string, rowNo int) *model.PriceRecord {
	rec := &model.PriceRecord{RowNo: rowNo}

	rec.Region = trimmedStringPtr(cellAt(row, 0))
	rec.Country = trimmedStringPtr(cellAt(row, 1))
	rec.Supplier = stringPtr(cellAt(row, 2))
	rec.Currency = stringPtr(cellAt(row, 3))
	rec.PaymentTerms = stringPtr(cellAt(row, 4))

	for i, key := range model.PriceColumns {
		rec.SetField(key, parseFloatPtr(cellAt(row, minDataCells+i)))
	}

	if rec.Region == nil {
		return nil
	}
	return rec
}

// extractTerms 收集尾部区域中以 * 开头的行，去掉前缀 * 与两侧空白
func extractTerms(rows [][]string) []string {
	var terms []string
	for _, row := range rows {
		cell := cellAt(row, 0)
		if !strings.HasPrefix(cell, "*") {
			continue
		}
		terms = append(terms, strings.TrimSpace(cell[1:]))
	}
	return terms
}

// extractTier1Cities 在尾部区域找到城市标记行之后，收集非 * 开头的非空行
// 标记行之前的行不算城市；后续再出现 * 行只是普通注释，不会中断收集
func extractTier1Cities(rows [][]string) []string {
	var cities []string
	started := false
	for _, row := range rows {
		cell := cellAt(row, 0)
		if strings.HasPrefix(cell, cityListMarker) {
			started = true
			continue
		}
		if started && cell != "" && !strings.HasPrefix(cell, "*") {
			cities = append(cities, strings.TrimSpace(cell))
		}
	}
	return cities
}

// distinctRegions 保留记录里 region 的去重 + 字典序排序结果
func distinctRegions(records []*model.PriceRecord) []string {
	seen := make(map[string]struct{})
	var regions []string
	for _, rec := range records {
		region := rec.RegionValue()
		if region == "" {
			continue
		}
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
