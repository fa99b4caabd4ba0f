package embed_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErikKalkoken/embedkit/internal/embed"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   any
		want embed.Color
		err  error
	}{
		{embed.ColorGold, embed.ColorGold, nil},
		{0xFFAA00, 0xFFAA00, nil},
		{int64(255), 255, nil},
		{float64(16), 16, nil},
		{"gold", embed.ColorGold, nil},
		{"Dark_Blue", 0x206694, nil},
		{"#FFAA00", 0xFFAA00, nil},
		{"#ffaa00", 0xFFAA00, nil},
		{"#FFAA", 0, embed.ErrUnknownColor},
		{"#GGGGGG", 0, embed.ErrUnknownColor},
		{"unknown", 0, embed.ErrUnknownColor},
		{0x1000000, 0, embed.ErrLimitExceeded},
		{-5, 0, embed.ErrLimitExceeded},
		{true, 0, embed.ErrInvalidShape},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("#%d", i+1), func(t *testing.T) {
			got, err := embed.ParseColor(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestColor(t *testing.T) {
	t.Run("can render as hex", func(t *testing.T) {
		assert.Equal(t, "#F1C40F", embed.ColorGold.String())
		assert.Equal(t, "#000000", embed.ColorDefault.String())
	})
	t.Run("can list names in order", func(t *testing.T) {
		names := embed.ColorNames()
		assert.IsIncreasing(t, names)
		assert.Contains(t, names, "blurple")
		assert.Contains(t, names, "latte")
	})
	t.Run("can lookup by name", func(t *testing.T) {
		c, ok := embed.ColorByName(" RED ")
		assert.True(t, ok)
		assert.Equal(t, embed.ColorRed, c)
		_, ok = embed.ColorByName("pink")
		assert.False(t, ok)
	})
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"rich", "image", "video", "gifv", "article", "link", "Link"} {
		_, err := embed.ParseType(s)
		assert.NoError(t, err, s)
	}
	_, err := embed.ParseType("poll")
	assert.ErrorIs(t, err, embed.ErrUnknownType)
	assert.False(t, embed.Type("RICH").IsValid())
	assert.True(t, embed.TypeGifv.IsValid())
}
