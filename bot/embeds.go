// ABOUTME: Embed builders, colors, and message limits for bot replies.
// ABOUTME: Colors match the palette Discord clients use for their named colors.
package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/party"
)

// Embed colors.
const (
	colorBlue   = 0x3498db
	colorRed    = 0xe74c3c
	colorOrange = 0xe67e22
	colorGreen  = 0x2ecc71
	colorPurple = 0x9b59b6
	colorTeal   = 0x1abc9c
)

// MaxMessageLength is Discord's content limit in characters.
const MaxMessageLength = 2000

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxMessageLength {
		return s
	}
	return string(runes[:MaxMessageLength])
}

func modeColor(m agents.Mode) int {
	switch m {
	case agents.ModeChaos:
		return colorRed
	case agents.ModeHirano:
		return colorOrange
	default:
		return colorBlue
	}
}

func modeMenuEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "モードを選択してください",
		Description: "**デフォルト**:\n" +
			"各ロールから 1 人ずつ + フリー枠 1 人の合計 5 人が選ばれます。\n\n" +
			"**カオス**:\n" +
			"ロールを完全に無視して、全エージェントから 5 人ランダムで選びます。\n\n" +
			"**平野流**:\n" +
			"必ずコントローラーが 1 人以上含まれるように、5 人がランダムで選ばれます。\n",
		Color: colorBlue,
	}
}

// Button labels per mode, in menu order.
var modeLabels = []struct {
	mode  agents.Mode
	label string
}{
	{agents.ModeDefault, "デフォルト"},
	{agents.ModeChaos, "カオス"},
	{agents.ModeHirano, "平野流"},
}

const randomButtonPrefix = "va_random:"

func modeButtons(disabled bool) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(modeLabels))
	for _, ml := range modeLabels {
		buttons = append(buttons, discordgo.Button{
			Label:    ml.label,
			Style:    discordgo.PrimaryButton,
			CustomID: randomButtonPrefix + string(ml.mode),
			Disabled: disabled,
		})
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func selectionEmbed(mode agents.Mode, players, picks []string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: mode.Title(),
		Description: "ボイスチャンネルに 5 人以上いる場合は、その中から 5 人が自動で割り当てられます。\n" +
			"見る専の人がいる場合は、見る専の人が自分で指名してあげましょう！",
		Color:  modeColor(mode),
		Footer: &discordgo.MessageEmbedFooter{Text: "注意：この構成は試合に勝つことを前提とした構成ではありません。"},
	}
	for i, name := range picks {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: players[i], Value: name})
	}
	return embed
}

func mapEmbed(name string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "本日のマップは…",
		Description: fmt.Sprintf("🎲 ランダムに選ばれたマップは **%s** です！", name),
		Color:       colorGreen,
	}
}

func banEmbed(names []string) *discordgo.MessageEmbed {
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "- " + n
	}
	return &discordgo.MessageEmbed{
		Title:       "ピック禁止祭（BAN ルーレット）",
		Description: "この試合で **ピック禁止** になったエージェントは：\n\n" + strings.Join(lines, "\n"),
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: "※ 罰ゲーム用のローカルルールなどと組み合わせて使ってね。"},
	}
}

func punishEmbed(assignments []party.Assignment) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "罰ゲームルーレット",
		Description: "VC にいる全員に罰ゲームを割り当てました。",
		Color:       colorPurple,
	}
	for _, a := range assignments {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: a.Member, Value: a.Text})
	}
	return embed
}

func roleEmbed(assignments []party.RoleAssignment) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "役職シャッフル",
		Description: "この試合の役職担当は以下の通りです！",
		Color:       colorBlue,
	}
	for _, a := range assignments {
		name := a.Member
		if a.Role != nil {
			name = a.Role.Title
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: a.Text()})
	}
	return embed
}

func teamsEmbed(teamA, teamB []string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "チーム分けランダム",
		Description: "VC メンバーを 2 チームにランダムで分けました。",
		Color:       colorTeal,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "チームA", Value: teamList(teamA), Inline: true},
			{Name: "チームB", Value: teamList(teamB), Inline: true},
		},
	}
}

func teamList(members []string) string {
	if len(members) == 0 {
		return "（なし）"
	}
	lines := make([]string, len(members))
	for i, m := range members {
		lines[i] = "- " + m
	}
	return strings.Join(lines, "\n")
}
