package store

import (
	"sync"
	"time"

	"shorturl-service/internal/model"
)

// URLStore 内存短链接存储
// 所有映射由一个进程内实例持有，通过读写锁保证并发安全：
// 写操作（Save / IncrementClicks）互斥，读操作可以并发执行
type URLStore struct {
	mu      sync.RWMutex
	entries map[string]*model.Entry
}

// NewURLStore 创建一个空的存储实例
func NewURLStore() *URLStore {
	return &URLStore{
		entries: make(map[string]*model.Entry),
	}
}

// Save 保存短码到原始 URL 的映射，点击数初始化为 0
// 如果短码已存在则静默覆盖：唯一性由调用方通过生成器的排除集保证
func (s *URLStore) Save(code, originalURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[code] = &model.Entry{
		ShortCode:   code,
		OriginalURL: originalURL,
		ClickCount:  0,
		CreatedAt:   time.Now().UTC(),
	}
}

// Get 查询短码对应的记录
// 返回值是副本，调用方拿到的数据不会被后续的点击计数修改
func (s *URLStore) Get(code string) (model.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[code]
	if !ok {
		return model.Entry{}, false
	}
	return *entry, true
}

// IncrementClicks 原子地将短码的点击数加一
// 短码不存在时返回 false，不创建记录，也不视为错误
func (s *URLStore) IncrementClicks(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[code]
	if !ok {
		return false
	}
	entry.ClickCount++
	return true
}

// CodeExists 判断短码是否已被占用
func (s *URLStore) CodeExists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[code]
	return ok
}

// Codes 返回当前全部短码的快照，供生成器作为排除集使用
// 快照在返回之后不再跟随存储变化
func (s *URLStore) Codes() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make(map[string]struct{}, len(s.entries))
	for code := range s.entries {
		codes[code] = struct{}{}
	}
	return codes
}

// Len 返回当前记录总数
func (s *URLStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// TotalClicks 返回所有短码的累计点击数
func (s *URLStore) TotalClicks() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, entry := range s.entries {
		total += entry.ClickCount
	}
	return total
}
