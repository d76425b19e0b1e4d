package shortcode

import (
	"regexp"
	"strings"
)

// urlPattern 要求 scheme 为 http/https/ftp，:// 之后首字符不能是
// 分隔符（/ . ? #）或空白，其余部分不允许出现空白字符
var urlPattern = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#][^\s]*$`)

// IsValidURL 校验原始 URL 的格式
// 先去掉首尾空白再匹配，空串和裸 scheme（如 "http://"）都会被拒绝
func IsValidURL(rawURL string) bool {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false
	}
	return urlPattern.MatchString(trimmed)
}

// IsValidShortCode 校验短码格式：恰好 6 个字母或数字
func IsValidShortCode(code string) bool {
	if len(code) != DefaultLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !isAlphanumeric(c) {
			return false
		}
	}
	return true
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
