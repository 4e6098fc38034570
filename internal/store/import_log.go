package store

import "time"

// ImportLog 一次导入的记录
type ImportLog struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	RecordCount int       `json:"recordCount"`
	TermCount   int       `json:"termCount"`
	CityCount   int       `json:"cityCount"`
	DurationMs  int64     `json:"durationMs"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddImportLog 写入导入记录
func (s *Store) AddImportLog(logEntry *ImportLog) error {
	_, err := s.db.Exec(`
		INSERT INTO import_logs (id, filename, record_count, term_count, city_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, logEntry.ID, logEntry.Filename, logEntry.RecordCount, logEntry.TermCount, logEntry.CityCount, logEntry.DurationMs)
	return err
}

// LastImportLog 最近一次导入记录；没有导入过返回 (nil, nil)
func (s *Store) LastImportLog() (*ImportLog, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, record_count, term_count, city_count, duration_ms, created_at
		FROM import_logs ORDER BY created_at DESC, id LIMIT 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	logEntry := &ImportLog{}
	if err := rows.Scan(
		&logEntry.ID, &logEntry.Filename,
		&logEntry.RecordCount, &logEntry.TermCount, &logEntry.CityCount,
		&logEntry.DurationMs, &logEntry.CreatedAt,
	); err != nil {
		return nil, err
	}

	return logEntry, nil
}
