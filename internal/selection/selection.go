package selection

import "sync"

// State 级联选择状态
// 上游变更会清空下游：换区域清空国家/类别/字段，换类别清空字段
type State struct {
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Category       string  `json:"category"`
	FieldKey       string  `json:"fieldKey"`
	DistanceKm     float64 `json:"distanceKm"`
	OutOfHours     bool    `json:"outOfHours"`
	WeekendHoliday bool    `json:"weekendHoliday"`
}

// SetRegion 选择区域，连带清空下游选择
func (s *State) SetRegion(region string) {
	s.Region = region
	s.Country = ""
	s.Category = ""
	s.FieldKey = ""
}

// SetCountry 选择国家
func (s *State) SetCountry(country string) {
	s.Country = country
}

// SetCategory 选择类别，连带清空字段选择
func (s *State) SetCategory(category string) {
	s.Category = category
	s.FieldKey = ""
}

// SetFieldKey 选择价格字段
func (s *State) SetFieldKey(key string) {
	s.FieldKey = key
}

// Patch 部分更新；仅非 nil 字段生效
type Patch struct {
	Region         *string  `json:"region"`
	Country        *string  `json:"country"`
	Category       *string  `json:"category"`
	FieldKey       *string  `json:"fieldKey"`
	DistanceKm     *float64 `json:"distanceKm"`
	OutOfHours     *bool    `json:"outOfHours"`
	WeekendHoliday *bool    `json:"weekendHoliday"`
}

// Store 内存中的当前选择，随进程存活，新导入后整体重置
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore 创建选择状态存储
func NewStore() *Store {
	return &Store{}
}

// Get 取当前选择的副本
func (st *Store) Get() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Apply 应用部分更新，按上游到下游的顺序生效，返回更新后的状态
func (st *Store) Apply(p Patch) State {
	st.mu.Lock()
	defer st.mu.Unlock()

	if p.Region != nil {
		st.state.SetRegion(*p.Region)
	}
	if p.Country != nil {
		st.state.SetCountry(*p.Country)
	}
	if p.Category != nil {
		st.state.SetCategory(*p.Category)
	}
	if p.FieldKey != nil {
		st.state.SetFieldKey(*p.FieldKey)
	}
	if p.DistanceKm != nil {
		st.state.DistanceKm = *p.DistanceKm
	}
	if p.OutOfHours != nil {
		st.state.OutOfHours = *p.OutOfHours
	}
	if p.WeekendHoliday != nil {
		st.state.WeekendHoliday = *p.WeekendHoliday
	}

	return st.state
}

// Reset 清空全部选择（导入新价格表后调用）
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = State{}
}
