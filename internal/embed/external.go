package embed

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// ToMessageEmbed converts the embed into the embed type of the discordgo library.
func (em *Embed) ToMessageEmbed() *discordgo.MessageEmbed {
	me := &discordgo.MessageEmbed{
		Title:       em.title,
		Description: em.description,
		Color:       int(em.color),
		Type:        discordgo.EmbedType(em.typ),
		URL:         em.url,
	}
	if !em.timestamp.IsZero() {
		me.Timestamp = em.timestamp.UTC().Format(TimestampFormat)
	}
	if em.image != nil {
		me.Image = &discordgo.MessageEmbedImage{
			URL:      em.image.URL,
			ProxyURL: em.image.ProxyURL,
			Height:   em.image.Height,
			Width:    em.image.Width,
		}
	}
	if em.thumbnail != nil {
		me.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL:      em.thumbnail.URL,
			ProxyURL: em.thumbnail.ProxyURL,
			Height:   em.thumbnail.Height,
			Width:    em.thumbnail.Width,
		}
	}
	if em.video != nil {
		me.Video = &discordgo.MessageEmbedVideo{
			URL:    em.video.URL,
			Height: em.video.Height,
			Width:  em.video.Width,
		}
	}
	if em.provider != nil {
		me.Provider = &discordgo.MessageEmbedProvider{Name: em.provider.Name, URL: em.provider.URL}
	}
	if em.author != nil {
		me.Author = &discordgo.MessageEmbedAuthor{
			Name:         em.author.Name,
			URL:          em.author.URL,
			IconURL:      em.author.IconURL,
			ProxyIconURL: em.author.ProxyIconURL,
		}
	}
	for _, f := range em.fields {
		me.Fields = append(me.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if em.footer != nil {
		me.Footer = &discordgo.MessageEmbedFooter{
			Text:         em.footer.Text,
			IconURL:      em.footer.IconURL,
			ProxyIconURL: em.footer.ProxyIconURL,
		}
	}
	return me
}

// FromMessageEmbed returns a validated embed from an embed of the discordgo library.
func FromMessageEmbed(me *discordgo.MessageEmbed) (*Embed, error) {
	em, err := New(nil)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return em, nil
	}
	if me.Type != "" {
		if err := em.Set("type", string(me.Type)); err != nil {
			return nil, err
		}
	}
	if err := em.SetTitle(me.Title); err != nil {
		return nil, err
	}
	if err := em.SetDescription(me.Description); err != nil {
		return nil, err
	}
	if err := em.SetColor(Color(me.Color)); err != nil {
		return nil, err
	}
	if err := em.SetURL(me.URL); err != nil {
		return nil, err
	}
	if me.Timestamp != "" {
		t, err := time.Parse(time.RFC3339, me.Timestamp)
		if err != nil {
			return nil, shapeError("timestamp", me.Timestamp, "does not conform to RFC3339")
		}
		em.SetTimestamp(t)
	}
	if x := me.Author; x != nil {
		a := Author{Name: x.Name, URL: x.URL, IconURL: x.IconURL, ProxyIconURL: x.ProxyIconURL}
		if err := em.SetAuthor(a); err != nil {
			return nil, err
		}
	}
	if x := me.Footer; x != nil {
		f := Footer{Text: x.Text, IconURL: x.IconURL, ProxyIconURL: x.ProxyIconURL}
		if err := em.SetFooter(f); err != nil {
			return nil, err
		}
	}
	if x := me.Image; x != nil {
		if err := em.SetImage(Media{URL: x.URL, ProxyURL: x.ProxyURL, Height: x.Height, Width: x.Width}); err != nil {
			return nil, err
		}
	}
	if x := me.Thumbnail; x != nil {
		if err := em.SetThumbnail(Media{URL: x.URL, ProxyURL: x.ProxyURL, Height: x.Height, Width: x.Width}); err != nil {
			return nil, err
		}
	}
	if x := me.Video; x != nil {
		if err := em.SetVideo(Video{URL: x.URL, Height: x.Height, Width: x.Width}); err != nil {
			return nil, err
		}
	}
	if x := me.Provider; x != nil {
		if err := em.SetProvider(Provider{Name: x.Name, URL: x.URL}); err != nil {
			return nil, err
		}
	}
	fields := make([]Field, 0, len(me.Fields))
	for _, f := range me.Fields {
		if f == nil {
			continue
		}
		fields = append(fields, Field{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if err := em.SetFields(fields); err != nil {
		return nil, err
	}
	return em, nil
}
