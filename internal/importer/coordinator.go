package importer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Vithu2008-CS/price-book-calculator/internal/parser"
	"github.com/Vithu2008-CS/price-book-calculator/internal/store"
)

// Coordinator 导入协调器
// 打开上传的工作簿，解析第一个 Sheet，整体替换存储中的价格手册
type Coordinator struct {
	store  *store.Store
	parser *parser.PriceBookParser
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{
		store:  st,
		parser: parser.NewPriceBookParser(),
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath string
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`      // start/info/warning/done/error
	Message   string      `json:"message"`   // 事件消息
	Data      interface{} `json:"data"`      // 附加数据
	Timestamp time.Time   `json:"timestamp"` // 时间戳
}

// ImportReport 导入报告
type ImportReport struct {
	Filename    string        `json:"filename"`
	RecordCount int           `json:"recordCount"`
	TermCount   int           `json:"termCount"`
	CityCount   int           `json:"cityCount"`
	RegionCount int           `json:"regionCount"`
	Duration    time.Duration `json:"duration"`
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 16)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
// 任何一步失败只发 error 事件，已有的价格手册保持不变
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()
	filename := filepath.Base(opts.FilePath)

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "start",
		Message:   "Importing price book",
		Data:      map[string]string{"filename": filename},
		Timestamp: time.Now(),
	})

	file, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("Failed to open workbook: %v", err),
			Timestamp: time.Now(),
		})
		return
	}
	defer file.Close()

	result, err := c.parser.ExtractWorkbook(file)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("Failed to parse price book: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("Extracted %d records, %d terms, %d cities", len(result.Records), len(result.Terms), len(result.Tier1Cities)),
		Data: map[string]int{
			"records": len(result.Records),
			"terms":   len(result.Terms),
			"cities":  len(result.Tier1Cities),
			"regions": len(result.Regions),
		},
		Timestamp: time.Now(),
	})

	if err := c.store.ReplacePriceBook(result, filename); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("Failed to store price book: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	if err := c.store.SetConfig(store.ConfigKeySourceFile, filename); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("Failed to record source file: %v", err),
			Timestamp: time.Now(),
		})
	}
	if err := c.store.SetConfig(store.ConfigKeyImportedAt, startTime.Format(time.RFC3339)); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("Failed to record import time: %v", err),
			Timestamp: time.Now(),
		})
	}

	duration := time.Since(startTime)

	// 导入日志失败不影响导入结果
	_ = c.store.AddImportLog(&store.ImportLog{
		ID:          uuid.New().String(),
		Filename:    filename,
		RecordCount: len(result.Records),
		TermCount:   len(result.Terms),
		CityCount:   len(result.Tier1Cities),
		DurationMs:  duration.Milliseconds(),
	})

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "done",
		Message: "Import complete",
		Data: &ImportReport{
			Filename:    filename,
			RecordCount: len(result.Records),
			TermCount:   len(result.Terms),
			CityCount:   len(result.Tier1Cities),
			RegionCount: len(result.Regions),
			Duration:    duration,
		},
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
