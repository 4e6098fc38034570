package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Vithu2008-CS/price-book-calculator/internal/model"
)

// recordColumns 价格行的全部数据列，顺序以 model.PriceColumns 为准
// SQL 在运行时拼列名，36 个价格列不再手抄一遍，避免列序转录出错
func recordColumns() []string {
	cols := []string{"row_no", "region", "country", "supplier", "currency", "payment_terms"}
	cols = append(cols, model.PriceColumns...)
	return append(cols, "source_file")
}

// ReplacePriceBook 用一次解析结果整体替换当前价格手册
// 单事务完成：失败时旧数据原样保留
func (s *Store) ReplacePriceBook(result *model.ExtractionResult, sourceFile string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"price_records", "terms", "tier1_cities"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	cols := recordColumns()
	insertSQL := fmt.Sprintf(
		"INSERT INTO price_records (%s) VALUES (%s)",
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
	)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range result.Records {
		args := make([]interface{}, 0, len(cols))
		args = append(args,
			rec.RowNo,
			nullString(rec.Region),
			nullString(rec.Country),
			nullString(rec.Supplier),
			nullString(rec.Currency),
			nullString(rec.PaymentTerms),
		)
		for _, key := range model.PriceColumns {
			v, _ := rec.Field(key)
			args = append(args, nullFloat(v))
		}
		args = append(args, sourceFile)

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert record (row %d): %w", rec.RowNo, err)
		}
	}

	for i, term := range result.Terms {
		if _, err := tx.Exec("INSERT INTO terms (position, content) VALUES (?, ?)", i, term); err != nil {
			return fmt.Errorf("failed to insert term: %w", err)
		}
	}

	for i, city := range result.Tier1Cities {
		if _, err := tx.Exec("INSERT INTO tier1_cities (position, name) VALUES (?, ?)", i, city); err != nil {
			return fmt.Errorf("failed to insert city: %w", err)
		}
	}

	return tx.Commit()
}

// RecordQueryOptions 价格行查询条件，nil 字段不参与过滤
type RecordQueryOptions struct {
	Region  *string
	Country *string
}

// ListRecords 查询价格行
func (s *Store) ListRecords(opts RecordQueryOptions) ([]*model.PriceRecord, error) {
	query := fmt.Sprintf("SELECT id, %s FROM price_records", strings.Join(recordColumns(), ", "))
	var conds []string
	var args []interface{}

	if opts.Region != nil {
		conds = append(conds, "region = ?")
		args = append(args, *opts.Region)
	}
	if opts.Country != nil {
		conds = append(conds, "country = ?")
		args = append(args, *opts.Country)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.PriceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// FindRecordByCountry 按国家取第一条匹配的价格行；没有匹配返回 (nil, nil)
// 与选择列表一致：国家在手册里重复出现时以先出现的行为准
func (s *Store) FindRecordByCountry(country string) (*model.PriceRecord, error) {
	query := fmt.Sprintf(
		"SELECT id, %s FROM price_records WHERE country = ? ORDER BY id LIMIT 1",
		strings.Join(recordColumns(), ", "),
	)

	rows, err := s.db.Query(query, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRecord(rows)
}

// ListRegions 去重排序后的区域列表
func (s *Store) ListRegions() ([]string, error) {
	return s.queryStrings(
		"SELECT DISTINCT region FROM price_records WHERE region IS NOT NULL ORDER BY region")
}

// ListCountries 某区域下去重排序后的国家列表
func (s *Store) ListCountries(region string) ([]string, error) {
	return s.queryStrings(
		"SELECT DISTINCT country FROM price_records WHERE region = ? AND country IS NOT NULL ORDER BY country",
		region)
}

// CountRecords 当前价格行数
func (s *Store) CountRecords() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM price_records").Scan(&count)
	return count, err
}

func (s *Store) queryStrings(query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// scanRecord 按 recordColumns 的顺序扫描一行
func scanRecord(rows *sql.Rows) (*model.PriceRecord, error) {
	rec := &model.PriceRecord{}

	var region, country, supplier, currency, paymentTerms sql.NullString
	prices := make([]sql.NullFloat64, len(model.PriceColumns))

	dest := []interface{}{&rec.ID, &rec.RowNo, &region, &country, &supplier, &currency, &paymentTerms}
	for i := range prices {
		dest = append(dest, &prices[i])
	}
	dest = append(dest, &rec.SourceFile)

	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan price record: %w", err)
	}

	rec.Region = fromNullString(region)
	rec.Country = fromNullString(country)
	rec.Supplier = fromNullString(supplier)
	rec.Currency = fromNullString(currency)
	rec.PaymentTerms = fromNullString(paymentTerms)

	for i, key := range model.PriceColumns {
		if prices[i].Valid {
			v := prices[i].Float64
			rec.SetField(key, &v)
		}
	}

	return rec, nil
}

func nullString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
