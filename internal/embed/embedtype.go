package embed

import (
	"strings"
)

// Type is the type tag of an embed.
type Type string

// Embed types. Webhook embeds are always of type rich.
const (
	TypeRich    Type = "rich"
	TypeImage   Type = "image"
	TypeVideo   Type = "video"
	TypeGifv    Type = "gifv"
	TypeArticle Type = "article"
	TypeLink    Type = "link"
)

var validTypes = map[Type]bool{
	TypeRich:    true,
	TypeImage:   true,
	TypeVideo:   true,
	TypeGifv:    true,
	TypeArticle: true,
	TypeLink:    true,
}

// IsValid reports whether t is a known embed type.
func (t Type) IsValid() bool {
	return validTypes[t]
}

// ParseType returns the embed type for s. Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", &ValidationError{Field: "type", Value: s, Err: ErrUnknownType}
	}
	return t, nil
}
