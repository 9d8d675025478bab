// ABOUTME: Slash command definitions for the /va party tools and the /ai generators.
// ABOUTME: /ai model choices come from the model catalog so the menu follows the configured models.
package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/2389-research/vabot/llm"
)

// Ban count bounds.
const (
	DefaultBanCount = 2
	MinBanCount     = 1
	MaxBanCount     = 5
)

// Commands returns the application commands to register.
func Commands(catalog *llm.Catalog) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{vaCommand(), aiCommand(catalog)}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func vaCommand() *discordgo.ApplicationCommand {
	minBan := float64(MinBanCount)
	return &discordgo.ApplicationCommand{
		Name:        "va",
		Description: "VALORANT 用エージェント＆パーティツール",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("random", "ランダムでエージェント構成を決めます。"),
			subcommand("random_map", "ランダムでマップを1つ選びます。"),
			subcommand("ban", "ピック禁止エージェントをランダムで決めます。", &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "BAN するエージェント数（1〜5、未指定は2）",
				MinValue:    &minBan,
				MaxValue:    MaxBanCount,
			}),
			subcommand("punish", "VCメンバー全員に罰ゲームを割り当てます。"),
			subcommand("role_shuffle", "VCメンバーに5つの役職を割り当てます。"),
			subcommand("teams", "VCメンバーを2チームにランダムで分けます。"),
			subcommand("help", "VA Bot のヘルプを表示します。"),
		},
	}
}

func aiCommand(catalog *llm.Catalog) *discordgo.ApplicationCommand {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, m := range catalog.Models() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m.DisplayName, Value: m.Choice})
	}

	model := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "model",
			Description: "使用するモデル、回答が変わったりします",
			Required:    true,
			Choices:     choices,
		}
	}
	tacticContent := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "content",
			Description: "状況や要望（例：バインド攻めで、オペが出てきて連敗中）",
			Required:    true,
		}
	}
	punishContent := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "content",
			Description: "mapや使ってるキャラを入力",
		}
	}

	return &discordgo.ApplicationCommand{
		Name:        "ai",
		Description: "AI による作戦・罰ゲーム生成",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("tactic", "AIによる戦術を考えてくれるモード", model(), tacticContent()),
			subcommand("tactic_hard", "AIによる戦術を考えてくれるモード（ハード）", model(), tacticContent()),
			subcommand("punish", "AIによる罰ゲームを考えてくれるモード", model(), punishContent()),
			subcommand("punish_hard", "AIによる罰ゲームを考えてくれるモード（ハード）", model(), punishContent()),
		},
	}
}

// option finds a named option of a subcommand.
func option(sub *discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range sub.Options {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// banCount reads the count option, defaulting and clamping it.
func banCount(sub *discordgo.ApplicationCommandInteractionDataOption) int {
	o := option(sub, "count")
	if o == nil || o.Type != discordgo.ApplicationCommandOptionInteger {
		return DefaultBanCount
	}
	return clamp(int(o.IntValue()), MinBanCount, MaxBanCount)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
