package store

// GetTerms 按原始行序取条款列表
func (s *Store) GetTerms() ([]string, error) {
	return s.queryStrings("SELECT content FROM terms ORDER BY position")
}

// CountTerms 条款条数
func (s *Store) CountTerms() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM terms").Scan(&count)
	return count, err
}

// GetTier1Cities 按原始行序取一线城市列表
func (s *Store) GetTier1Cities() ([]string, error) {
	return s.queryStrings("SELECT name FROM tier1_cities ORDER BY position")
}

// CountTier1Cities 一线城市条数
func (s *Store) CountTier1Cities() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM tier1_cities").Scan(&count)
	return count, err
}
