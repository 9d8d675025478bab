// ABOUTME: The roll command: previews agent selections and bans in the terminal.
// ABOUTME: Output is styled with lipgloss; colors are dropped when the writer is not a terminal.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/party"
	"github.com/2389-research/vabot/roll"
)

const rollBan = "ban"

type rollOptions struct {
	count int
	seed  uint64
}

func newRollCmd(a *app) *cobra.Command {
	var opts rollOptions
	cmd := &cobra.Command{
		Use:       "roll [default|chaos|hirano|ban]",
		Short:     "Roll an agent composition or a ban list from the agent file",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(agents.ModeDefault), string(agents.ModeChaos), string(agents.ModeHirano), rollBan},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := string(agents.ModeDefault)
			if len(args) == 1 {
				mode = args[0]
			}
			return a.roll(cmd.OutOrStdout(), mode, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 2, "number of agents to ban")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "fixed random seed (0 picks one)")
	return cmd
}

func (a *app) roll(w io.Writer, mode string, opts rollOptions) error {
	var r roll.Rand = roll.Global
	if opts.seed != 0 {
		r = roll.Seeded(opts.seed)
	}
	selector := newSelector(a.cfg, r, a.logger)

	styles := newPreviewStyles(w)
	if mode == rollBan {
		banned := selector.Ban(opts.count)
		if len(banned) == 0 {
			return fmt.Errorf("no agents in %s", a.cfg.AgentFile)
		}
		fmt.Fprintln(w, styles.title.Render("ピック禁止"))
		for _, name := range banned {
			fmt.Fprintln(w, styles.item.Render("- "+name))
		}
		return nil
	}

	m := agents.Mode(mode)
	picks, err := selector.Select(m)
	if err != nil {
		return err
	}
	if len(picks) == 0 {
		return fmt.Errorf("no agents in %s", a.cfg.AgentFile)
	}

	players := party.PadPlayers(nil, agents.TeamSize)
	width := 0
	for _, p := range players {
		width = max(width, len(p))
	}

	fmt.Fprintln(w, styles.title.Render(m.Title()))
	for i, name := range picks {
		label := players[i] + strings.Repeat(" ", width-len(players[i]))
		fmt.Fprintln(w, styles.label.Render(label)+"  "+styles.item.Render(name))
	}
	return nil
}

type previewStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	item  lipgloss.Style
}

func newPreviewStyles(w io.Writer) previewStyles {
	r := lipgloss.NewRenderer(w)
	return previewStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		label: r.NewStyle().Foreground(lipgloss.Color("241")),
		item:  r.NewStyle().Foreground(lipgloss.Color("255")),
	}
}
