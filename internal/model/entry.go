package model

import (
	"time"
)

// Entry 短链接映射记录
// 创建之后 OriginalURL 与 CreatedAt 不可变，ClickCount 只增不减
type Entry struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"url"`
	ClickCount  int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
}
