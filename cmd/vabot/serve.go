// ABOUTME: The serve command: runs the Discord bot and, when WEB_ADDR is set, the web server.
// ABOUTME: Both stop together on SIGINT/SIGTERM or when either fails.
package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/2389-research/vabot/bot"
	"github.com/2389-research/vabot/llm"
	"github.com/2389-research/vabot/roll"
	"github.com/2389-research/vabot/web"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot (and the web server when WEB_ADDR is set)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is not set")
	}

	catalog := llm.DefaultCatalog()
	client := newLLMClient(a.cfg, catalog, a.logger)
	defer client.Close()

	selector := newSelector(a.cfg, roll.Global, a.logger)

	b, err := bot.New(a.cfg.DiscordToken,
		bot.WithGuild(a.cfg.GuildID),
		bot.WithSelector(selector),
		bot.WithGenerator(newProxy(client, catalog, a.logger)),
		bot.WithCatalog(catalog),
		bot.WithMaps(mapList(a.cfg)),
		bot.WithPunishments(punishmentList(a.cfg)),
		bot.WithGenerationTimeout(a.cfg.GenerationTimeout),
		bot.WithLogger(a.logger.Named("bot")),
	)
	if err != nil {
		return err
	}

	a.logger.Info("starting",
		zap.String("version", version),
		zap.Strings("providers", client.Providers()),
		zap.String("agent_file", a.cfg.AgentFile),
		zap.String("web_addr", a.cfg.WebAddr),
	)

	var srv *web.Server
	if a.cfg.WebAddr != "" {
		srv, err = web.NewServer(web.ServerConfig{
			Addr:     a.cfg.WebAddr,
			Selector: selector,
			Maps:     mapList(a.cfg),
			Logger:   a.logger.Named("web"),
		})
		if err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.Run(ctx) })
	if srv != nil {
		g.Go(func() error { return srv.ListenAndServe(ctx) })
	}
	return g.Wait()
}
