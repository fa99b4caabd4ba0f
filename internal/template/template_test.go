package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/embedkit/internal/embed"
	"github.com/ErikKalkoken/embedkit/internal/template"
)

const tomlTemplate = `
title = "Release"
description = "A new version is available"
color = "gold"
url = "https://www.example.com/release"
timestamp = 2024-05-01T12:30:00Z
thumbnail_url = "https://www.example.com/thumb.png"

[author]
name = "Bot"
icon_url = "https://www.example.com/icon.png"

[footer]
text = "footer"
icon_url = ""

[[fields]]
name = "Version"
value = "1.2.3"
inline = true

[[fields]]
name = "Notes"
value = "Bugfixes"
`

const yamlTemplate = `
title: Release
description: A new version is available
color: 0xF1C40F
url: https://www.example.com/release
timestamp: "2024-05-01T12:30:00Z"
thumbnail_url: https://www.example.com/thumb.png
author:
  name: Bot
  icon_url: https://www.example.com/icon.png
footer:
  text: footer
  icon_url: ""
fields:
  - name: Version
    value: "1.2.3"
    inline: true
  - name: Notes
    value: Bugfixes
`

const jsonTemplate = `{
  "title": "Release",
  "description": "A new version is available",
  "color": 15844367,
  "url": "https://www.example.com/release",
  "timestamp": "2024-05-01T12:30:00Z",
  "thumbnail_url": "https://www.example.com/thumb.png",
  "author": {"name": "Bot", "icon_url": "https://www.example.com/icon.png"},
  "footer": {"text": "footer", "icon_url": ""},
  "fields": [
    {"name": "Version", "value": "1.2.3", "inline": true},
    {"name": "Notes", "value": "Bugfixes"}
  ]
}`

func TestLoad(t *testing.T) {
	want := map[string]any{
		"title":       "Release",
		"type":        "rich",
		"description": "A new version is available",
		"color":       int(embed.ColorGold),
		"url":         "https://www.example.com/release",
		"timestamp":   "2024-05-01T12:30:00Z",
		"thumbnail":   map[string]any{"url": "https://www.example.com/thumb.png"},
		"author":      map[string]any{"name": "Bot", "icon_url": "https://www.example.com/icon.png"},
		"footer":      map[string]any{"text": "footer"},
		"fields": []map[string]any{
			{"name": "Version", "value": "1.2.3", "inline": true},
			{"name": "Notes", "value": "Bugfixes", "inline": false},
		},
	}
	cases := []struct {
		name string
		data string
	}{
		{"embed.toml", tomlTemplate},
		{"embed.yaml", yamlTemplate},
		{"embed.json", jsonTemplate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), tc.name)
			require.NoError(t, os.WriteFile(p, []byte(tc.data), 0644))
			em, err := template.Load(p)
			require.NoError(t, err)
			assert.Equal(t, want, em.Build())
		})
	}
	t.Run("should return error for unknown extension", func(t *testing.T) {
		_, err := template.Load("embed.txt")
		assert.ErrorIs(t, err, template.ErrUnknownFormat)
	})
	t.Run("should return error when file does not exist", func(t *testing.T) {
		_, err := template.Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("should return validation errors", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "embed.toml")
		require.NoError(t, os.WriteFile(p, []byte(`title = "x"`+"\n"+`colour = 1`), 0644))
		_, err := template.Load(p)
		var errKeys *embed.UnexpectedKeysError
		require.ErrorAs(t, err, &errKeys)
		assert.Equal(t, []string{"colour"}, errKeys.Keys)
	})
}

func TestParse(t *testing.T) {
	t.Run("should return error for malformed data", func(t *testing.T) {
		_, err := template.Parse([]byte("title = "), template.FormatTOML)
		assert.Error(t, err)
		_, err = template.Parse([]byte("{"), template.FormatJSON)
		assert.Error(t, err)
		_, err = template.Parse([]byte("title: [x"), template.FormatYAML)
		assert.Error(t, err)
	})
	t.Run("should return error for unknown format", func(t *testing.T) {
		_, err := template.Parse([]byte(""), template.Format(99))
		assert.ErrorIs(t, err, template.ErrUnknownFormat)
	})
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want template.Format
	}{
		{"a.toml", template.FormatTOML},
		{"a.yaml", template.FormatYAML},
		{"A.YML", template.FormatYAML},
		{"dir/a.json", template.FormatJSON},
	}
	for _, tc := range cases {
		got, err := template.FormatFromPath(tc.path)
		if assert.NoError(t, err) {
			assert.Equal(t, tc.want, got)
		}
	}
}
