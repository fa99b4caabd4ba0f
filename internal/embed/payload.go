package embed

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampFormat is the format used for timestamps in payloads.
const TimestampFormat = time.RFC3339

// Build returns the embed as mapping in the shape of Discord's embed object.
//
// Title, type and color are always included.
// All other sections are only included when they are set.
func (em *Embed) Build() map[string]any {
	data := map[string]any{
		"title": em.title,
		"type":  string(em.typ),
		"color": int(em.color),
	}
	setString(data, "description", em.description)
	setString(data, "url", em.url)
	if !em.timestamp.IsZero() {
		data["timestamp"] = em.timestamp.UTC().Format(TimestampFormat)
	}
	if em.author != nil {
		data["author"] = em.author.ToPayload()
	}
	if em.footer != nil {
		data["footer"] = em.footer.ToPayload()
	}
	if em.image != nil {
		data["image"] = em.image.ToPayload()
	}
	if em.thumbnail != nil {
		data["thumbnail"] = em.thumbnail.ToPayload()
	}
	if em.video != nil {
		data["video"] = em.video.ToPayload()
	}
	if em.provider != nil {
		data["provider"] = em.provider.ToPayload()
	}
	if len(em.fields) > 0 {
		fields := make([]map[string]any, len(em.fields))
		for i, f := range em.fields {
			fields[i] = f.ToPayload()
		}
		data["fields"] = fields
	}
	return data
}

// MarshalJSON returns the JSON encoding of the payload from [Embed.Build].
func (em *Embed) MarshalJSON() ([]byte, error) {
	return json.Marshal(em.Build())
}

// String returns a human readable multi-line representation of the embed.
func (em *Embed) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "title=%s\n", em.title)
	fmt.Fprintf(&b, "type=%s\n", em.typ)
	fmt.Fprintf(&b, "color=%s\n", em.color)
	fmt.Fprintf(&b, "description=%s\n", em.description)
	if em.url != "" {
		fmt.Fprintf(&b, "url=%s\n", em.url)
	}
	if !em.timestamp.IsZero() {
		fmt.Fprintf(&b, "timestamp=%s\n", em.timestamp.UTC().Format(TimestampFormat))
	}
	if em.author != nil {
		fmt.Fprintf(&b, "author=%v\n", em.author.ToPayload())
	}
	if em.thumbnail != nil {
		fmt.Fprintf(&b, "thumbnail=%v\n", em.thumbnail.ToPayload())
	}
	if em.image != nil {
		fmt.Fprintf(&b, "image=%v\n", em.image.ToPayload())
	}
	if em.footer != nil {
		fmt.Fprintf(&b, "footer=%v\n", em.footer.ToPayload())
	}
	b.WriteString("fields=[\n")
	for _, f := range em.fields {
		fmt.Fprintf(&b, "  %v\n", f.ToPayload())
	}
	b.WriteString("]")
	return b.String()
}

// Section describes the usage of a length limited text in an embed.
type Section struct {
	Name   string
	Length int
	Limit  int
}

// Sections returns all text sections of the embed with their lengths and limits.
func (em *Embed) Sections() []Section {
	s := []Section{
		{"title", length(em.title), titleLength},
		{"description", length(em.description), descriptionLength},
	}
	if em.author != nil {
		s = append(s, Section{"author.name", length(em.author.Name), authorNameLength})
	}
	if em.footer != nil {
		s = append(s, Section{"footer.text", length(em.footer.Text), footerTextLength})
	}
	for i, f := range em.fields {
		s = append(s, Section{fmt.Sprintf("fields[%d].name", i), length(f.Name), fieldNameLength})
		s = append(s, Section{fmt.Sprintf("fields[%d].value", i), length(f.Value), fieldValueLength})
	}
	s = append(s, Section{"fields", len(em.fields), fieldsQuantity})
	s = append(s, Section{"total", em.size(), embedCombinedLength})
	return s
}
