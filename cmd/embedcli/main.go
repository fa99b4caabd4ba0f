/*
Embedcli is a CLI tool for building, checking and sending Discord embeds.

Embeds are defined in template files, which can be written in TOML, YAML or JSON.

Usage:

	embedcli [global options] command [command options]

Commands are:

	check    checks whether embed templates are valid
	render   prints the payload of an embed template as JSON
	inspect  shows the length of each text section of an embed template
	send     sends an embed template to a configured webhook
	feed     creates an embed from the newest item of a RSS or Atom feed
	preset   creates a log, warn or error embed
	colors   lists the named colors
	help, h  Shows a list of commands or help for one command

Global flags are:

	--config value  path to configuration file (default: "embedkit.toml")
	--help, -h      show help
	--version, -v   print the version
*/
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ErikKalkoken/embedkit/internal/app/config"
	"github.com/ErikKalkoken/embedkit/internal/sender"
)

const configFilename = "embedkit.toml"

// Overwritten with current tag when released
var Version = "0.0.0"

func main() {
	var r runner
	app := &cli.App{
		Name:    "embedcli",
		Usage:   "build, check and send Discord embeds",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to configuration file",
				Value: configFilename,
			},
		},
		Before: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx.String("config"), cCtx.IsSet("config"))
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			slog.SetLogLoggerLevel(cfg.App.LoggerLevel())
			s, err := sender.New(&http.Client{Timeout: cfg.App.RequestTimeout()})
			if err != nil {
				return err
			}
			r = runner{cfg: cfg, out: cCtx.App.Writer, sender: s}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "checks whether embed templates are valid",
				ArgsUsage: "file...",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() == 0 {
						return errors.New("no files specified")
					}
					return r.check(cCtx.Context, cCtx.Args().Slice())
				},
			},
			{
				Name:      "render",
				Usage:     "prints the payload of an embed template as JSON",
				ArgsUsage: "file",
				Action: func(cCtx *cli.Context) error {
					path := cCtx.Args().First()
					if path == "" {
						return errors.New("no file specified")
					}
					return r.render(path)
				},
			},
			{
				Name:      "inspect",
				Usage:     "shows the length of each text section of an embed template",
				ArgsUsage: "file",
				Action: func(cCtx *cli.Context) error {
					path := cCtx.Args().First()
					if path == "" {
						return errors.New("no file specified")
					}
					return r.inspect(path)
				},
			},
			{
				Name:      "send",
				Usage:     "sends an embed template to a configured webhook",
				ArgsUsage: "file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "webhook", Usage: "name of the webhook", Required: true},
					&cli.StringFlag{Name: "content", Usage: "text shown above the embed"},
				},
				Action: func(cCtx *cli.Context) error {
					path := cCtx.Args().First()
					if path == "" {
						return errors.New("no file specified")
					}
					return r.send(cCtx.Context, path, cCtx.String("webhook"), cCtx.String("content"))
				},
			},
			{
				Name:      "feed",
				Usage:     "creates an embed from the newest item of a RSS or Atom feed",
				ArgsUsage: "url-or-file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "name of the feed shown in the footer"},
					&cli.StringFlag{Name: "webhook", Usage: "name of the webhook to send the embed to"},
				},
				Action: func(cCtx *cli.Context) error {
					source := cCtx.Args().First()
					if source == "" {
						return errors.New("no feed specified")
					}
					return r.feed(cCtx.Context, source, cCtx.String("name"), cCtx.String("webhook"))
				},
			},
			{
				Name:      "preset",
				Usage:     "creates a log, warn or error embed",
				ArgsUsage: "kind title description",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "webhook", Usage: "name of the webhook to send the embed to"},
				},
				Action: func(cCtx *cli.Context) error {
					args := cCtx.Args()
					if args.Len() != 3 {
						return errors.New("need kind, title and description")
					}
					return r.preset(cCtx.Context, args.Get(0), args.Get(1), args.Get(2), cCtx.String("webhook"))
				},
			},
			{
				Name:  "colors",
				Usage: "lists the named colors",
				Action: func(cCtx *cli.Context) error {
					return r.colors()
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file at path.
// A missing file is only an error when the path was set explicitly.
func loadConfig(path string, explicit bool) (config.Config, error) {
	cfg, err := config.FromFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		slog.Debug("no config file found. Using defaults", "path", path)
		return config.Default(), nil
	}
	return cfg, err
}
