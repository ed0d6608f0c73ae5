package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"기본 변환", "UPS Accessories", "ups-accessories"},
		{"앰퍼샌드 치환", "Racks & Cabinets", "racks-and-cabinets"},
		{"특수문자 축약", "UPS > Single Phase Online RT", "ups-single-phase-online-rt"},
		{"앞뒤 공백 제거", "  Battery  ", "battery"},
		{"연속 특수문자", "Fiber---Cables!!", "fiber-cables"},
		{"빈 문자열", "", ""},
		{"특수문자만", "***", ""},
		{"숫자 유지", "1 To 3KVA", "1-to-3kva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNormalizeMatchText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"하이픈을 공백으로", "UPS Accessories", "ups accessories"},
		{"자유 형식 카테고리", "UPS > Single Phase Online RT, UPS", "ups single phase online rt ups"},
		{"앰퍼샌드 포함", "Racks & Cabinets", "racks and cabinets"},
		{"빈 문자열", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMatchText(tt.input))
		})
	}
}

func TestNormalizeSpaces(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeSpaces("  hello   world  "))
	assert.Equal(t, "", NormalizeSpaces("   "))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t "))
	assert.False(t, IsBlank(" a "))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "secr***", Mask("secret123"))
	assert.Equal(t, "***", Mask("key"))
	assert.Equal(t, "***", Mask(""))
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected []string
	}{
		{
			name:     "쉼표로 연결된 이미지 URL",
			input:    "https://a.png , https://b.png,, https://c.png",
			sep:      ",",
			expected: []string{"https://a.png", "https://b.png", "https://c.png"},
		},
		{
			name:     "빈 항목만 있는 경우",
			input:    " , , ",
			sep:      ",",
			expected: nil,
		},
		{
			name:     "빈 문자열",
			input:    "",
			sep:      ",",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, tt.sep))
		})
	}
}
