package embed

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	t.Run("IsValidURL", func(t *testing.T) {
		cases := []struct {
			in   any
			want bool
		}{
			{"https://www.example.com", true},
			{"http://www.example.com", true},
			{"https://", true},
			{"www.example.com", false},
			{"ftp://www.example.com", false},
			{"httpx://www.example.com", false},
			{"", false},
			{42, false},
			{nil, false},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, IsValidURL(tc.in), tc.in)
		}
	})
	t.Run("IsValidTitle", func(t *testing.T) {
		assert.True(t, IsValidTitle(""))
		assert.True(t, IsValidTitle(makeStr(256)))
		assert.False(t, IsValidTitle(makeStr(257)))
		assert.False(t, IsValidTitle(1))
	})
	t.Run("IsValidDescription", func(t *testing.T) {
		assert.True(t, IsValidDescription(makeStr(2048)))
		assert.False(t, IsValidDescription(makeStr(2049)))
		assert.False(t, IsValidDescription([]byte("x")))
	})
	t.Run("IsValidField", func(t *testing.T) {
		cases := []struct {
			in   any
			want bool
		}{
			{map[string]any{"name": "n", "value": "v"}, true},
			{map[string]any{"name": "n", "value": "v", "inline": true}, true},
			{Field{Name: "n", Value: "v"}, true},
			{map[string]any{"name": "n", "value": "v", "inline": "true"}, false},
			{map[string]any{"name": "n"}, false},
			{map[string]any{"value": "v"}, false},
			{map[string]any{"name": makeStr(257), "value": "v"}, false},
			{map[string]any{"name": "n", "value": makeStr(1025)}, false},
			{map[string]any{"name": "n", "value": "v", "extra": 1}, false},
			{"field", false},
		}
		for i, tc := range cases {
			assert.Equal(t, tc.want, IsValidField(tc.in), fmt.Sprintf("#%d", i+1))
		}
	})
	t.Run("IsValidFieldList", func(t *testing.T) {
		f := map[string]any{"name": "n", "value": "v"}
		full := make([]any, 25)
		for i := range full {
			full[i] = f
		}
		assert.True(t, IsValidFieldList([]any{}))
		assert.True(t, IsValidFieldList(full))
		assert.True(t, IsValidFieldList([]map[string]any{f}))
		assert.False(t, IsValidFieldList(append(full, f)))
		assert.False(t, IsValidFieldList([]any{f, "x"}))
		assert.False(t, IsValidFieldList(f))
	})
	t.Run("IsValidColor", func(t *testing.T) {
		assert.True(t, IsValidColor(0))
		assert.True(t, IsValidColor(0xFFFFFF))
		assert.True(t, IsValidColor(ColorGold))
		assert.True(t, IsValidColor(int64(255)))
		assert.False(t, IsValidColor(0x1000000))
		assert.False(t, IsValidColor(-1))
		assert.False(t, IsValidColor("gold"))
		assert.False(t, IsValidColor(1.5))
	})
	t.Run("IsValidAuthorShape", func(t *testing.T) {
		assert.True(t, IsValidAuthorShape(map[string]any{"name": "n", "icon_url": "x"}))
		assert.True(t, IsValidAuthorShape(Attrs{"name": "n", "icon_url": ""}))
		assert.False(t, IsValidAuthorShape(map[string]any{"name": "n"}))
		assert.False(t, IsValidAuthorShape("author"))
	})
	t.Run("IsValidFooterShape", func(t *testing.T) {
		assert.True(t, IsValidFooterShape(map[string]any{"text": "t", "icon_url": "x"}))
		assert.False(t, IsValidFooterShape(map[string]any{"icon_url": "x"}))
		assert.False(t, IsValidFooterShape(nil))
	})
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{1, 1, true},
		{int64(2), 2, true},
		{uint8(3), 3, true},
		{4.0, 4, true},
		{float32(5), 5, true},
		{4.5, 0, false},
		{int64(math.MaxInt32), math.MaxInt32, true},
		{int64(math.MaxInt32) + 1, 0, false},
		{int64(math.MinInt32) - 1, 0, false},
		{uint(math.MaxInt32) + 1, 0, false},
		{uint32(math.MaxInt32) + 1, 0, false},
		{uint64(math.MaxInt32) + 1, 0, false},
		{"6", 0, false},
		{nil, 0, false},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("#%d", i+1), func(t *testing.T) {
			got, ok := asInt(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in        string
		max       int
		want      string
		truncated bool
	}{
		{"alpha 😀 boy", 11, "alpha 😀 boy", false},
		{"alpha 😀 boy", 100, "alpha 😀 boy", false},
		{"alpha 😀 boy", 10, "alpha 😀...", true},
		{"alpha boy", 3, "...", true},
		{"", 3, "", false},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("#%d", i+1), func(t *testing.T) {
			got, truncated := Truncate(tc.in, tc.max)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.truncated, truncated)
			assert.GreaterOrEqual(t, tc.max, length(got))
		})
	}
	t.Run("should panic when maxLen is below 3", func(t *testing.T) {
		assert.Panics(t, func() {
			Truncate("xyz", 2)
		})
	})
}

func TestPreview(t *testing.T) {
	assert.Equal(t, `"abc"`, preview("abc"))
	assert.Equal(t, "42", preview(42))
	assert.Len(t, []rune(preview(makeStr(100))), 42)
}

func makeStr(n int) string {
	return strings.Repeat("x", n)
}
