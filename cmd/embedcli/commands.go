package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ErikKalkoken/embedkit/internal/app/config"
	"github.com/ErikKalkoken/embedkit/internal/consoletable"
	"github.com/ErikKalkoken/embedkit/internal/embed"
	"github.com/ErikKalkoken/embedkit/internal/feeditem"
	"github.com/ErikKalkoken/embedkit/internal/sender"
	"github.com/ErikKalkoken/embedkit/internal/template"
)

var errInvalidTemplates = errors.New("invalid templates")

type webhookSender interface {
	Send(ctx context.Context, webhookURL string, m embed.Message) (string, error)
}

var _ webhookSender = (*sender.Sender)(nil)

// runner executes the commands of the CLI.
type runner struct {
	cfg    config.Config
	out    io.Writer
	sender webhookSender
}

func (r runner) check(ctx context.Context, paths []string) error {
	errs := make([]error, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, errs[i] = template.Load(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var invalid int
	for i, p := range paths {
		if errs[i] != nil {
			invalid++
			fmt.Fprintf(r.out, "FAIL %s: %s\n", p, errs[i])
			continue
		}
		fmt.Fprintf(r.out, "OK   %s\n", p)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d: %w", invalid, len(paths), errInvalidTemplates)
	}
	return nil
}

func (r runner) render(path string) error {
	em, err := template.Load(path)
	if err != nil {
		return err
	}
	return r.printJSON(em)
}

func (r runner) printJSON(em *embed.Embed) error {
	data, err := json.MarshalIndent(em, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

func (r runner) inspect(path string) error {
	em, err := template.Load(path)
	if err != nil {
		return err
	}
	table := consoletable.New(path, "Section", "Length", "Limit", "Used %")
	for _, s := range em.Sections() {
		table.AddRow(s.Name, s.Length, s.Limit, float64(s.Length)*100/float64(s.Limit))
	}
	return table.Render(r.out)
}

func (r runner) send(ctx context.Context, path, webhook, content string) error {
	em, err := template.Load(path)
	if err != nil {
		return err
	}
	return r.post(ctx, webhook, embed.Message{Content: content, Embeds: []*embed.Embed{em}})
}

func (r runner) post(ctx context.Context, webhook string, m embed.Message) error {
	wh, err := r.cfg.Webhook(webhook)
	if err != nil {
		return err
	}
	r.cfg.App.Brand(&m)
	id, err := r.sender.Send(ctx, wh.URL, m)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Message %s sent to %s\n", id, wh.Name)
	return nil
}

func (r runner) feed(ctx context.Context, source, name, webhook string) error {
	feed, err := feeditem.Fetch(ctx, source)
	if err != nil {
		return err
	}
	item, err := feeditem.Latest(feed)
	if err != nil {
		return err
	}
	em, err := feeditem.New(name, feed, item).ToEmbed()
	if err != nil {
		return err
	}
	if webhook == "" {
		return r.printJSON(em)
	}
	return r.post(ctx, webhook, embed.Message{Embeds: []*embed.Embed{em}})
}

func (r runner) preset(ctx context.Context, kind, title, description, webhook string) error {
	var em *embed.Embed
	var err error
	switch strings.ToLower(kind) {
	case "log":
		em, err = embed.Log(title, description)
	case "warn":
		em, err = embed.Warn(title, description)
	case "error":
		em, err = embed.Error(title, errors.New(description))
	default:
		return fmt.Errorf("unknown preset: %s", kind)
	}
	if err != nil {
		return err
	}
	if webhook == "" {
		return r.printJSON(em)
	}
	return r.post(ctx, webhook, embed.Message{Embeds: []*embed.Embed{em}})
}

func (r runner) colors() error {
	table := consoletable.New("Colors", "Name", "Hex", "Value")
	for _, name := range embed.ColorNames() {
		c, _ := embed.ColorByName(name)
		table.AddRow(name, c.String(), int(c))
	}
	return table.Render(r.out)
}
