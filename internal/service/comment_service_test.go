package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "短内容原样返回",
			input: "短评论",
			max:   120,
			want:  "短评论",
		},
		{
			name:  "ASCII 超长按字符截断",
			input: strings.Repeat("a", 200),
			max:   120,
			want:  strings.Repeat("a", 120),
		},
		{
			name:  "中文超长不能切坏多字节序列",
			input: strings.Repeat("阅", 130),
			max:   120,
			want:  strings.Repeat("阅", 120),
		},
		{
			name:  "混合内容在字符边界截断",
			input: "ab测试" + strings.Repeat("评", 120),
			max:   5,
			want:  "ab测试评",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.input, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
