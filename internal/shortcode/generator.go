package shortcode

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// Charset 包含用于生成短码的所有字符
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// DefaultLength 是生成的短码的默认长度
	DefaultLength = 6
	// MaxAttempts 是生成唯一短码的最大尝试次数
	MaxAttempts = 100
)

// ErrGenerationExhausted 表示在尝试次数内没有找到未被占用的短码
// 说明键空间相对排除集已经接近饱和，调用方可以带新的快照重试
var ErrGenerationExhausted = errors.New("短码空间已耗尽，无法生成唯一短码")

// Generate 生成一个不在 existing 中的随机短码
// existing 是调用方在调用前取得的快照，不是存储的实时视图
func Generate(length int, existing map[string]struct{}) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	for i := 0; i < MaxAttempts; i++ {
		code, err := randomString(length)
		if err != nil {
			return "", err
		}
		if _, taken := existing[code]; !taken {
			return code, nil
		}
	}
	return "", ErrGenerationExhausted
}

// randomString 使用加密安全的随机数生成器生成一个给定长度的字符串
// 每个位置独立均匀采样，允许字符重复
func randomString(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(Charset))))
		if err != nil {
			return "", err
		}
		b[i] = Charset[num.Int64()]
	}
	return string(b), nil
}
