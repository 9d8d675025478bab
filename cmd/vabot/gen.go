// ABOUTME: The gen command: one-shot tactic or punishment generation printed to stdout.
// ABOUTME: Failures print the same user-facing message the bot would show, then exit non-zero.
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2389-research/vabot/llm"
	"github.com/2389-research/vabot/textgen"
)

type genOptions struct {
	hard  bool
	model int
}

func newGenCmd(a *app) *cobra.Command {
	var opts genOptions
	cmd := &cobra.Command{
		Use:       "gen <tactic|punish> [content...]",
		Short:     "Generate a tactic or punishment game with an LLM",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{string(textgen.ModeTactic), string(textgen.ModePunish)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := textgen.ParseMode(args[0])
			if err != nil {
				return err
			}
			params := textgen.Params{
				Mode:    mode,
				Hard:    opts.hard,
				Model:   opts.model,
				Content: strings.Join(args[1:], " "),
			}
			return a.gen(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), params)
		},
	}
	cmd.Flags().BoolVar(&opts.hard, "hard", false, "ask for an extremely difficult variant")
	cmd.Flags().IntVarP(&opts.model, "model", "m", 1, "model choice (see the /ai model menu)")
	return cmd
}

func (a *app) gen(ctx context.Context, stdout, stderr io.Writer, params textgen.Params) error {
	catalog := llm.DefaultCatalog()
	client := newLLMClient(a.cfg, catalog, a.logger)
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, a.cfg.GenerationTimeout)
	defer cancel()

	res, err := newProxy(client, catalog, a.logger).Generate(ctx, params)
	if err != nil {
		fmt.Fprintln(stderr, "エラー: "+textgen.Describe(err))
		return fmt.Errorf("generation failed: %w", err)
	}
	_, err = fmt.Fprintln(stdout, res.Text)
	return err
}
