// Package feeditem turns items of RSS and Atom feeds into embeds.
package feeditem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/ErikKalkoken/embedkit/internal/embed"
)

// Embed limits applied when truncating feed data
const (
	maxTitleLength       = 256 // title, author name
	maxDescriptionLength = 2048
	maxFooterLength      = 2048
)

var ErrNoItems = errors.New("feed has no items")

var converter = newConverter()

// newConverter returns a HTML to markdown converter,
// which drops images and replaces links which text is itself a URL.
// Links without a http(s) target are reduced to their text.
func newConverter() *md.Converter {
	c := md.NewConverter("", true, nil)
	dropImages := md.Rule{
		Filter: []string{"img"},
		Replacement: func(_ string, _ *goquery.Selection, _ *md.Options) *string {
			return md.String("")
		},
	}
	sanitizeLinks := md.Rule{
		Filter: []string{"a"},
		Replacement: func(content string, selec *goquery.Selection, _ *md.Options) *string {
			href := selec.AttrOr("href", "")
			if !embed.IsValidURL(href) {
				return md.String(content)
			}
			if _, err := url.ParseRequestURI(content); err != nil {
				return nil
			}
			return md.String("[Link](" + href + ")")
		},
	}
	c.AddRules(dropImages, sanitizeLinks)
	return c
}

// FeedItem represents a feed item to be shown as embed.
type FeedItem struct {
	Description string
	FeedName    string
	FeedTitle   string
	FeedURL     string
	IconURL     string
	ImageURL    string
	IsUpdated   bool
	ItemURL     string
	Published   time.Time
	Title       string
}

// New returns a feed item from a parsed feed and one of its items.
func New(feedName string, feed *gofeed.Feed, item *gofeed.Item) FeedItem {
	fi := FeedItem{
		Description: item.Description,
		FeedName:    feedName,
		FeedTitle:   feed.Title,
		FeedURL:     feed.Link,
		ItemURL:     item.Link,
		Title:       item.Title,
	}
	if fi.Description == "" {
		fi.Description = item.Content
	}
	if item.PublishedParsed != nil {
		fi.Published = *item.PublishedParsed
	}
	if item.UpdatedParsed != nil && item.PublishedParsed != nil {
		fi.IsUpdated = item.UpdatedParsed.After(*item.PublishedParsed)
	}
	if feed.Image != nil {
		fi.IconURL = feed.Image.URL
	}
	if item.Image != nil {
		fi.ImageURL = item.Image.URL
	}
	return fi
}

// ToEmbed generates an embed from a FeedItem.
// Texts exceeding Discord's limits are truncated.
// URLs which are not absolute http(s) URLs are dropped.
func (fi FeedItem) ToEmbed() (*embed.Embed, error) {
	description, err := converter.ConvertString(fi.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description to markdown: %w", err)
	}
	desc, truncated := embed.Truncate(description, maxDescriptionLength)
	if truncated {
		slog.Warn("description was truncated", "title", fi.Title)
	}
	t := fi.Title
	if fi.IsUpdated {
		t = fmt.Sprintf("UPDATED: %s", t)
	}
	title, truncated := embed.Truncate(t, maxTitleLength)
	if truncated {
		slog.Warn("title was truncated", "title", fi.Title)
	}
	em, err := embed.New(embed.Attrs{
		"title":       title,
		"description": desc,
		"url":         validURL(fi.ItemURL),
		"timestamp":   fi.Published,
	})
	if err != nil {
		return nil, err
	}
	if fi.FeedTitle != "" {
		name, truncated := embed.Truncate(fi.FeedTitle, maxTitleLength)
		if truncated {
			slog.Warn("author name was truncated", "FeedTitle", fi.FeedTitle)
		}
		a := embed.Author{Name: name, URL: validURL(fi.FeedURL), IconURL: validURL(fi.IconURL)}
		if err := em.SetAuthor(a); err != nil {
			return nil, err
		}
	}
	if u := validURL(fi.ImageURL); u != "" {
		if err := em.SetImageURL(u); err != nil {
			return nil, err
		}
	}
	if fi.FeedName != "" {
		text, _ := embed.Truncate(fi.FeedName, maxFooterLength)
		if err := em.SetFooter(embed.Footer{Text: text}); err != nil {
			return nil, err
		}
	}
	return em, nil
}

// validURL returns s when it is a valid URL for an embed or an empty string.
func validURL(s string) string {
	if s == "" {
		return ""
	}
	if !embed.IsValidURL(s) {
		slog.Warn("dropping invalid URL from feed item", "url", s)
		return ""
	}
	return s
}

// Fetch parses the feed at source, which can be an http(s) URL or a file path.
func Fetch(ctx context.Context, source string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	if embed.IsValidURL(source) {
		return fp.ParseURLWithContext(source, ctx)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fp.Parse(f)
}

// Latest returns the newest item of a feed.
// Items without publish date are only considered when no item has one.
func Latest(feed *gofeed.Feed) (*gofeed.Item, error) {
	if feed == nil || len(feed.Items) == 0 {
		return nil, ErrNoItems
	}
	var latest *gofeed.Item
	for _, item := range feed.Items {
		if item.PublishedParsed == nil {
			continue
		}
		if latest == nil || item.PublishedParsed.After(*latest.PublishedParsed) {
			latest = item
		}
	}
	if latest == nil {
		return feed.Items[0], nil
	}
	return latest, nil
}
