package shortcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://www.example.com/very/long/url/path",
		"http://example.com",
		"ftp://files.example.com/archive.tar.gz",
		"HTTPS://EXAMPLE.COM",
		"  https://example.com  ", // 首尾空白会被去掉
		"http://localhost:8080/path?q=1#frag",
	}
	for _, u := range valid {
		assert.True(t, IsValidURL(u), "应接受: %q", u)
	}

	invalid := []string{
		"",
		"not-a-url",
		"ftp://",
		"http://",
		"just some text",
		"https://exa mple.com/path", // 内部空白
		"http:///path",              // scheme 之后直接跟分隔符
		"http://.example.com",
		"mailto://someone@example.com",
	}
	for _, u := range invalid {
		assert.False(t, IsValidURL(u), "应拒绝: %q", u)
	}
}

func TestIsValidShortCode(t *testing.T) {
	valid := []string{"Ab3xYz", "123456", "abcdef", "ABCDEF", "a1B2c3"}
	for _, code := range valid {
		assert.True(t, IsValidShortCode(code), "应接受: %q", code)
	}

	invalid := []string{
		"",
		"abc",        // 太短
		"toolong123", // 太长
		"ab@123",     // 含非字母数字字符
		"ab 123",
		"abcdé6", // 非 ASCII 字符
	}
	for _, code := range invalid {
		assert.False(t, IsValidShortCode(code), "应拒绝: %q", code)
	}
}
