package parser

import (
	"strconv"
	"strings"
)

// cellAt 越界安全地取单元格；excelize 会裁掉行尾的空单元格
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// stringPtr 空单元格返回 nil，否则原样保留
func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// trimmedStringPtr 去掉两侧空白后为空则返回 nil
func trimmedStringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// parseFloatPtr 宽松解析数值单元格
// 空白或无法解析的内容返回 nil 而不是 0，调用方据此区分“缺失”和“免费”
func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "") // 移除千分位
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
