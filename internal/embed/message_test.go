package embed_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/embedkit/internal/embed"
)

func TestMessageValidate(t *testing.T) {
	withDescription := func(n int) *embed.Embed {
		em, err := embed.New(embed.Attrs{"description": makeStr(n)})
		require.NoError(t, err)
		return em
	}
	manyEmbeds := make([]*embed.Embed, 11)
	for i := range manyEmbeds {
		manyEmbeds[i] = withDescription(1)
	}
	cases := []struct {
		m  embed.Message
		ok bool
	}{
		{embed.Message{Content: "content"}, true},
		{embed.Message{}, false},
		{embed.Message{Embeds: []*embed.Embed{withDescription(10)}}, true},
		{embed.Message{Content: makeStr(2001)}, false},
		{embed.Message{Content: "content", Username: makeStr(81)}, false},
		{embed.Message{Content: "content", AvatarURL: "avatar.png"}, false},
		{embed.Message{Embeds: []*embed.Embed{nil}}, false},
		{embed.Message{Embeds: manyEmbeds}, false},
		{
			embed.Message{Embeds: []*embed.Embed{
				withDescription(2048),
				withDescription(2048),
				withDescription(2048),
			}},
			false,
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("validate message #%d", i+1), func(t *testing.T) {
			err := tc.m.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, embed.ErrInvalidMessage)
			}
		})
	}
}

func TestMessageToWebhookParams(t *testing.T) {
	em, err := embed.New(embed.Attrs{"title": "title"})
	require.NoError(t, err)
	m := embed.Message{Content: "content", Username: "user", AvatarURL: "https://www.example.com/a", Embeds: []*embed.Embed{em}}
	p := m.ToWebhookParams()
	assert.Equal(t, "content", p.Content)
	assert.Equal(t, "user", p.Username)
	assert.Equal(t, "https://www.example.com/a", p.AvatarURL)
	if assert.Len(t, p.Embeds, 1) {
		assert.Equal(t, "title", p.Embeds[0].Title)
	}
}
