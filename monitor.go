package lotto

import (
	"sync"
	"sync/atomic"
	"time"
)

// RunStats is a snapshot of what happened during one game run
type RunStats struct {
	// 输入统计
	InvalidAmounts   int64 `json:"invalid_amounts"`
	WrongLengths     int64 `json:"wrong_lengths"`
	OutOfRanges      int64 `json:"out_of_ranges"`
	DuplicateNumbers int64 `json:"duplicate_numbers"`

	// 彩票统计
	TicketsGenerated int64 `json:"tickets_generated"`
	TicketsEvaluated int64 `json:"tickets_evaluated"`
	WinningTickets   int64 `json:"winning_tickets"`

	// 发布统计
	Publishes       int64 `json:"publishes"`
	PublishFailures int64 `json:"publish_failures"`

	// 时间戳 (纳秒)
	StartTime      int64 `json:"start_time"`
	LastUpdateTime int64 `json:"last_update_time"`
}

// ValidationFailures returns the total number of rejected inputs
func (s RunStats) ValidationFailures() int64 {
	return s.InvalidAmounts + s.WrongLengths + s.OutOfRanges + s.DuplicateNumbers
}

// Duration returns the time between the first and the last recorded event
func (s RunStats) Duration() time.Duration {
	if s.StartTime == 0 || s.LastUpdateTime <= s.StartTime {
		return 0
	}
	return time.Duration(s.LastUpdateTime - s.StartTime)
}

// RunMonitor 运行监控器
type RunMonitor struct {
	stats   RunStats
	mu      sync.RWMutex
	enabled bool
}

// NewRunMonitor creates an enabled monitor
func NewRunMonitor() *RunMonitor {
	m := &RunMonitor{enabled: true}
	m.Reset()
	return m
}

// Enable 启用监控
func (m *RunMonitor) Enable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = true
}

// Disable 禁用监控
func (m *RunMonitor) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = false
}

// IsEnabled 检查是否启用了监控
func (m *RunMonitor) IsEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.enabled
}

func (m *RunMonitor) touch() {
	atomic.StoreInt64(&m.stats.LastUpdateTime, time.Now().UnixNano())
}

// RecordValidationFailure counts a rejected input by its error code
func (m *RunMonitor) RecordValidationFailure(code ErrorCode) {
	if !m.IsEnabled() {
		return
	}

	switch code {
	case ErrCodeInvalidAmount:
		atomic.AddInt64(&m.stats.InvalidAmounts, 1)
	case ErrCodeWrongLength:
		atomic.AddInt64(&m.stats.WrongLengths, 1)
	case ErrCodeOutOfRange:
		atomic.AddInt64(&m.stats.OutOfRanges, 1)
	case ErrCodeDuplicateNumber:
		atomic.AddInt64(&m.stats.DuplicateNumbers, 1)
	default:
		return
	}
	m.touch()
}

// RecordTicketsGenerated 记录生成的彩票数
func (m *RunMonitor) RecordTicketsGenerated(n int) {
	if !m.IsEnabled() {
		return
	}
	atomic.AddInt64(&m.stats.TicketsGenerated, int64(n))
	m.touch()
}

// RecordEvaluation 记录评估结果
func (m *RunMonitor) RecordEvaluation(evaluated, winning int) {
	if !m.IsEnabled() {
		return
	}
	atomic.AddInt64(&m.stats.TicketsEvaluated, int64(evaluated))
	atomic.AddInt64(&m.stats.WinningTickets, int64(winning))
	m.touch()
}

// RecordPublish 记录发布操作
func (m *RunMonitor) RecordPublish(success bool) {
	if !m.IsEnabled() {
		return
	}
	atomic.AddInt64(&m.stats.Publishes, 1)
	if !success {
		atomic.AddInt64(&m.stats.PublishFailures, 1)
	}
	m.touch()
}

// Stats returns a copy of the current counters
func (m *RunMonitor) Stats() RunStats {
	return RunStats{
		InvalidAmounts:   atomic.LoadInt64(&m.stats.InvalidAmounts),
		WrongLengths:     atomic.LoadInt64(&m.stats.WrongLengths),
		OutOfRanges:      atomic.LoadInt64(&m.stats.OutOfRanges),
		DuplicateNumbers: atomic.LoadInt64(&m.stats.DuplicateNumbers),
		TicketsGenerated: atomic.LoadInt64(&m.stats.TicketsGenerated),
		TicketsEvaluated: atomic.LoadInt64(&m.stats.TicketsEvaluated),
		WinningTickets:   atomic.LoadInt64(&m.stats.WinningTickets),
		Publishes:        atomic.LoadInt64(&m.stats.Publishes),
		PublishFailures:  atomic.LoadInt64(&m.stats.PublishFailures),
		StartTime:        atomic.LoadInt64(&m.stats.StartTime),
		LastUpdateTime:   atomic.LoadInt64(&m.stats.LastUpdateTime),
	}
}

// Reset 重置所有计数
func (m *RunMonitor) Reset() {
	atomic.StoreInt64(&m.stats.InvalidAmounts, 0)
	atomic.StoreInt64(&m.stats.WrongLengths, 0)
	atomic.StoreInt64(&m.stats.OutOfRanges, 0)
	atomic.StoreInt64(&m.stats.DuplicateNumbers, 0)
	atomic.StoreInt64(&m.stats.TicketsGenerated, 0)
	atomic.StoreInt64(&m.stats.TicketsEvaluated, 0)
	atomic.StoreInt64(&m.stats.WinningTickets, 0)
	atomic.StoreInt64(&m.stats.Publishes, 0)
	atomic.StoreInt64(&m.stats.PublishFailures, 0)
	now := time.Now().UnixNano()
	atomic.StoreInt64(&m.stats.StartTime, now)
	atomic.StoreInt64(&m.stats.LastUpdateTime, now)
}
