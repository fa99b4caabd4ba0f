// Package embed provides a validated builder for Discord embeds.
//
// Every mutation is checked against Discord's documented limits.
// A rejected mutation returns an error and leaves the embed unchanged.
package embed

import (
	"fmt"
	"slices"
	"time"
)

// Attrs holds loosely typed construction parameters for an embed,
// keyed by the names of Discord's embed object.
//
// Recognized keys are: title, type, description, url, timestamp, color,
// author, footer, image, thumbnail, thumbnail_url, video, provider, fields.
type Attrs map[string]any

// Keys in the order they are applied.
var attrKeys = []string{
	"type",
	"title",
	"description",
	"url",
	"timestamp",
	"color",
	"author",
	"footer",
	"image",
	"thumbnail",
	"thumbnail_url",
	"video",
	"provider",
	"fields",
}

// Embed is a Discord embed which is always in a valid state.
//
// The zero value is not usable. Use [New] to create an embed.
type Embed struct {
	author      *Author
	color       Color
	description string
	fields      []Field
	footer      *Footer
	image       *Media
	provider    *Provider
	thumbnail   *Media
	timestamp   time.Time
	title       string
	typ         Type
	url         string
	video       *Video
}

// New returns a new embed constructed from attrs. attrs may be nil.
//
// Any unrecognized key is rejected with an [UnexpectedKeysError] containing all such keys.
// Otherwise the first invalid value is reported as [ValidationError].
func New(attrs Attrs) (*Embed, error) {
	em := &Embed{typ: TypeRich, color: DefaultColor}
	if err := checkUnexpectedKeys("", attrs, attrKeys); err != nil {
		return nil, err
	}
	if _, ok := attrs["thumbnail"]; ok {
		if v, ok := attrs["thumbnail_url"]; ok {
			return nil, shapeError("thumbnail_url", v, "can not be combined with thumbnail")
		}
	}
	for _, k := range attrKeys {
		v, ok := attrs[k]
		if !ok || v == nil {
			continue
		}
		if err := em.Set(k, v); err != nil {
			return nil, err
		}
	}
	return em, nil
}

// Set validates and assigns the loosely typed value v to the field with the given key.
// Keys are the same as for [Attrs].
func (em *Embed) Set(key string, v any) error {
	switch key {
	case "title":
		s, err := stringFrom(key, v)
		if err != nil {
			return err
		}
		return em.SetTitle(s)
	case "type":
		if t, ok := v.(Type); ok {
			return em.SetType(t)
		}
		s, err := stringFrom(key, v)
		if err != nil {
			return err
		}
		t, err := ParseType(s)
		if err != nil {
			return err
		}
		return em.SetType(t)
	case "description":
		s, err := stringFrom(key, v)
		if err != nil {
			return err
		}
		return em.SetDescription(s)
	case "url":
		s, err := stringFrom(key, v)
		if err != nil {
			return err
		}
		return em.SetURL(s)
	case "timestamp":
		t, err := parseTimestamp(v)
		if err != nil {
			return err
		}
		em.SetTimestamp(t)
		return nil
	case "color":
		c, err := ParseColor(v)
		if err != nil {
			return err
		}
		return em.SetColor(c)
	case "author":
		a, err := parseAuthor(v)
		if err != nil {
			return err
		}
		return em.SetAuthor(a)
	case "footer":
		f, err := parseFooter(v)
		if err != nil {
			return err
		}
		return em.SetFooter(f)
	case "image":
		m, err := parseMedia("image", v)
		if err != nil {
			return err
		}
		return em.SetImage(m)
	case "thumbnail", "thumbnail_url":
		if key == "thumbnail_url" {
			if _, ok := v.(string); !ok {
				return shapeError(key, v, "must be a string")
			}
		}
		m, err := parseMedia("thumbnail", v)
		if err != nil {
			return err
		}
		return em.SetThumbnail(m)
	case "video":
		x, err := parseVideo(v)
		if err != nil {
			return err
		}
		return em.SetVideo(x)
	case "provider":
		p, err := parseProvider(v)
		if err != nil {
			return err
		}
		return em.SetProvider(p)
	case "fields":
		fields, err := parseFields(v)
		if err != nil {
			return err
		}
		return em.SetFields(fields)
	}
	return &UnexpectedKeysError{Keys: []string{key}}
}

func parseTimestamp(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, nil
		}
		return *x, nil
	case string:
		t, err := time.Parse(time.RFC3339, x)
		if err != nil {
			return time.Time{}, shapeError("timestamp", v, "does not conform to RFC3339")
		}
		return t, nil
	}
	return time.Time{}, shapeError("timestamp", v, "must be a time or an RFC3339 string")
}

func (em *Embed) Title() string {
	return em.title
}

// SetTitle sets the title. Titles can have up to 256 characters.
func (em *Embed) SetTitle(s string) error {
	if length(s) > titleLength {
		return tooLong("title", s, titleLength)
	}
	em.title = s
	return nil
}

func (em *Embed) Type() Type {
	return em.typ
}

func (em *Embed) SetType(t Type) error {
	if !t.IsValid() {
		return &ValidationError{Field: "type", Value: t, Err: ErrUnknownType}
	}
	em.typ = t
	return nil
}

func (em *Embed) Description() string {
	return em.description
}

// SetDescription sets the description. Descriptions can have up to 2048 characters.
func (em *Embed) SetDescription(s string) error {
	if length(s) > descriptionLength {
		return tooLong("description", s, descriptionLength)
	}
	em.description = s
	return nil
}

func (em *Embed) Color() Color {
	return em.color
}

func (em *Embed) SetColor(c Color) error {
	if !c.IsValid() {
		return &ValidationError{Field: "color", Value: int(c), Reason: "must be between 0 and 0xFFFFFF", Err: ErrLimitExceeded}
	}
	em.color = c
	return nil
}

func (em *Embed) URL() string {
	return em.url
}

// SetURL sets the URL of the title. An empty string removes the URL.
func (em *Embed) SetURL(s string) error {
	if err := checkURL("url", s); err != nil {
		return err
	}
	em.url = s
	return nil
}

func (em *Embed) Timestamp() time.Time {
	return em.timestamp
}

// SetTimestamp sets the timestamp. A zero time removes the timestamp.
func (em *Embed) SetTimestamp(t time.Time) {
	em.timestamp = t
}

// Author returns the author and reports whether it is set.
func (em *Embed) Author() (Author, bool) {
	if em.author == nil {
		return Author{}, false
	}
	return *em.author, true
}

// SetAuthor sets the author. An empty author removes the section.
func (em *Embed) SetAuthor(a Author) error {
	if a.IsZero() {
		em.author = nil
		return nil
	}
	if err := a.Validate(); err != nil {
		return err
	}
	em.author = &a
	return nil
}

// Footer returns the footer and reports whether it is set.
func (em *Embed) Footer() (Footer, bool) {
	if em.footer == nil {
		return Footer{}, false
	}
	return *em.footer, true
}

// SetFooter sets the footer. An empty footer removes the section.
func (em *Embed) SetFooter(f Footer) error {
	if f.IsZero() {
		em.footer = nil
		return nil
	}
	if err := f.Validate(); err != nil {
		return err
	}
	em.footer = &f
	return nil
}

// Image returns the image and reports whether it is set.
func (em *Embed) Image() (Media, bool) {
	if em.image == nil {
		return Media{}, false
	}
	return *em.image, true
}

// SetImage sets the image. An empty media removes the image.
func (em *Embed) SetImage(m Media) error {
	if m.IsZero() {
		em.image = nil
		return nil
	}
	if err := m.validate("image"); err != nil {
		return err
	}
	em.image = &m
	return nil
}

// SetImageURL sets the image from a bare URL.
func (em *Embed) SetImageURL(url string) error {
	if url == "" {
		return shapeError("image.url", url, "is required")
	}
	return em.SetImage(Media{URL: url})
}

// Thumbnail returns the thumbnail and reports whether it is set.
func (em *Embed) Thumbnail() (Media, bool) {
	if em.thumbnail == nil {
		return Media{}, false
	}
	return *em.thumbnail, true
}

// SetThumbnail sets the thumbnail. An empty media removes the thumbnail.
func (em *Embed) SetThumbnail(m Media) error {
	if m.IsZero() {
		em.thumbnail = nil
		return nil
	}
	if err := m.validate("thumbnail"); err != nil {
		return err
	}
	em.thumbnail = &m
	return nil
}

// SetThumbnailURL sets the thumbnail from a bare URL.
func (em *Embed) SetThumbnailURL(url string) error {
	if url == "" {
		return shapeError("thumbnail.url", url, "is required")
	}
	return em.SetThumbnail(Media{URL: url})
}

// Video returns the video and reports whether it is set.
func (em *Embed) Video() (Video, bool) {
	if em.video == nil {
		return Video{}, false
	}
	return *em.video, true
}

// SetVideo sets the video. An empty video removes the section.
func (em *Embed) SetVideo(v Video) error {
	if v.IsZero() {
		em.video = nil
		return nil
	}
	if err := v.Validate(); err != nil {
		return err
	}
	em.video = &v
	return nil
}

// Provider returns the provider and reports whether it is set.
func (em *Embed) Provider() (Provider, bool) {
	if em.provider == nil {
		return Provider{}, false
	}
	return *em.provider, true
}

// SetProvider sets the provider. An empty provider removes the section.
func (em *Embed) SetProvider(p Provider) error {
	if p.IsZero() {
		em.provider = nil
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	em.provider = &p
	return nil
}

// Fields returns a copy of the fields.
func (em *Embed) Fields() []Field {
	return slices.Clone(em.fields)
}

// SetFields replaces all fields. Embeds can have up to 25 fields.
func (em *Embed) SetFields(fields []Field) error {
	if len(fields) > fieldsQuantity {
		return tooManyFields(len(fields))
	}
	for i, f := range fields {
		if err := f.validate(fmt.Sprintf("fields[%d]", i)); err != nil {
			return err
		}
	}
	em.fields = slices.Clone(fields)
	return nil
}

// AddField appends a new field.
// It returns an error when the field is invalid or the embed already has 25 fields.
func (em *Embed) AddField(name, value string, inline bool) error {
	return em.AddFields(Field{Name: name, Value: value, Inline: inline})
}

// AddFields appends all given fields.
// Either all fields are appended or none, when one of them is invalid
// or the total number of fields would exceed 25.
func (em *Embed) AddFields(fields ...Field) error {
	n := len(em.fields)
	if n+len(fields) > fieldsQuantity {
		return tooManyFields(n + len(fields))
	}
	for i, f := range fields {
		if err := f.validate(fmt.Sprintf("fields[%d]", n+i)); err != nil {
			return err
		}
	}
	em.fields = append(em.fields, fields...)
	return nil
}

// size returns the number of characters counted towards the combined embed limit.
func (em *Embed) size() int {
	x := length(em.title) + length(em.description)
	if em.author != nil {
		x += length(em.author.Name)
	}
	if em.footer != nil {
		x += length(em.footer.Text)
	}
	for _, f := range em.fields {
		x += f.size()
	}
	return x
}
