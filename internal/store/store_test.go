package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestURLStore_SaveAndGet(t *testing.T) {
	s := NewURLStore()

	before := time.Now().UTC()
	s.Save("Ab3xYz", "https://www.example.com/very/long/url/path")

	entry, ok := s.Get("Ab3xYz")
	assert.True(t, ok, "保存后的短码应该可以查询到")
	assert.Equal(t, "Ab3xYz", entry.ShortCode)
	assert.Equal(t, "https://www.example.com/very/long/url/path", entry.OriginalURL)
	assert.EqualValues(t, 0, entry.ClickCount, "新记录的点击数应为 0")
	assert.False(t, entry.CreatedAt.Before(before), "创建时间不应早于保存时刻")
	assert.Equal(t, time.UTC, entry.CreatedAt.Location(), "创建时间应使用 UTC")
}

func TestURLStore_GetMissing(t *testing.T) {
	s := NewURLStore()

	entry, ok := s.Get("nope12")
	assert.False(t, ok)
	assert.Equal(t, "", entry.OriginalURL)
}

func TestURLStore_GetIsIdempotent(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com/a")

	first, ok1 := s.Get("aaaaaa")
	second, ok2 := s.Get("aaaaaa")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second, "没有写入时重复读取应返回相同数据")
}

func TestURLStore_SaveOverwrites(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com/old")
	s.IncrementClicks("aaaaaa")

	// 相同短码再次保存会静默覆盖，点击数归零
	s.Save("aaaaaa", "https://example.com/new")

	entry, ok := s.Get("aaaaaa")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/new", entry.OriginalURL)
	assert.EqualValues(t, 0, entry.ClickCount)
	assert.Equal(t, 1, s.Len(), "覆盖不应增加记录总数")
}

func TestURLStore_IncrementClicks(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com")

	for i := 0; i < 5; i++ {
		assert.True(t, s.IncrementClicks("aaaaaa"))
	}

	entry, _ := s.Get("aaaaaa")
	assert.EqualValues(t, 5, entry.ClickCount)
}

func TestURLStore_IncrementClicksMissing(t *testing.T) {
	s := NewURLStore()

	ok := s.IncrementClicks("nope12")
	assert.False(t, ok, "不存在的短码应返回 false")
	assert.Equal(t, 0, s.Len(), "失败的计数不应创建记录")
}

func TestURLStore_ConcurrentIncrements(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com")

	const goroutines = 50
	const perGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				s.IncrementClicks("aaaaaa")
			}
		}()
	}
	wg.Wait()

	entry, _ := s.Get("aaaaaa")
	assert.EqualValues(t, goroutines*perGoroutine, entry.ClickCount, "并发计数不应丢失更新")
}

func TestURLStore_ConcurrentSaveAndRead(t *testing.T) {
	s := NewURLStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		code := fmt.Sprintf("code%02d", i)
		go func(c string) {
			defer wg.Done()
			s.Save(c, "https://example.com/"+c)
		}(code)
		go func(c string) {
			defer wg.Done()
			// 读操作与写操作交错执行，只要求看到完整记录
			if entry, ok := s.Get(c); ok {
				assert.Equal(t, "https://example.com/"+c, entry.OriginalURL)
				assert.Equal(t, c, entry.ShortCode)
			}
		}(code)
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
}

func TestURLStore_GetReturnsCopy(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com")

	snapshot, _ := s.Get("aaaaaa")
	s.IncrementClicks("aaaaaa")

	assert.EqualValues(t, 0, snapshot.ClickCount, "已返回的副本不应被后续计数修改")
	current, _ := s.Get("aaaaaa")
	assert.EqualValues(t, 1, current.ClickCount)
}

func TestURLStore_CodesSnapshot(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com/a")
	s.Save("bbbbbb", "https://example.com/b")

	codes := s.Codes()
	assert.Len(t, codes, 2)
	assert.Contains(t, codes, "aaaaaa")
	assert.Contains(t, codes, "bbbbbb")

	// 快照是一次性拷贝，不跟随存储变化
	s.Save("cccccc", "https://example.com/c")
	assert.Len(t, codes, 2)
	assert.True(t, s.CodeExists("cccccc"))
}

func TestURLStore_TotalClicks(t *testing.T) {
	s := NewURLStore()
	s.Save("aaaaaa", "https://example.com/a")
	s.Save("bbbbbb", "https://example.com/b")
	s.IncrementClicks("aaaaaa")
	s.IncrementClicks("aaaaaa")
	s.IncrementClicks("bbbbbb")

	assert.EqualValues(t, 3, s.TotalClicks())
}
