// ABOUTME: Handlers for the /va party tools and the mode buttons of /va random.
// ABOUTME: Lists are reloaded per command; voice commands require the caller to be in a voice channel.
package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/docs"
	"github.com/2389-research/vabot/party"
)

// Reply texts for empty sources and voice preconditions.
const (
	msgInvalidMode    = "無効なモードが選択されました。"
	msgNoAgents       = "エージェント一覧が空です。`agents.json` を確認してください。"
	msgNoMaps         = "マップ一覧が空、または読み込みに失敗しました。`maps.json` を確認してください。"
	msgNoPunishments  = "罰ゲームリストが空、または読み込みに失敗しました。`punishments.json` を確認してください。"
	msgEmptyVoice     = "VC に人がいません。（Bot は除外しています）"
	msgTeamsNeedTwo   = "チーム分けするには最低 2 人必要です。"
	msgJoinVoiceFirst = "VC に参加してから `%s` を実行してください。"
)

func (b *Bot) vaRandom(i *discordgo.Interaction, _ *discordgo.ApplicationCommandInteractionDataOption) {
	b.respond(i, &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{modeMenuEmbed()},
		Components: modeButtons(false),
	})
}

func (b *Bot) onComponent(i *discordgo.Interaction) {
	data := i.MessageComponentData()
	raw, ok := strings.CutPrefix(data.CustomID, randomButtonPrefix)
	if !ok {
		return
	}

	mode := agents.Mode(raw)
	picks, err := b.selector.Select(mode)
	if err != nil {
		b.respond(i, &discordgo.InteractionResponseData{Content: msgInvalidMode, Flags: discordgo.MessageFlagsEphemeral})
		return
	}

	voiceNames, _ := b.voice.ChannelMembers(i.GuildID, userID(i))
	players := party.PadPlayers(voiceNames, agents.TeamSize)

	embed := selectionEmbed(mode, players, picks)
	if len(picks) == 0 {
		embed.Description = msgNoAgents
	}

	err = b.out.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: modeButtons(true),
		},
	})
	if err != nil {
		b.logger.Error("update selection message", zap.Error(err))
	}
	b.logger.Debug("agents selected", zap.String("mode", string(mode)), zap.Strings("agents", picks))
}

func (b *Bot) vaRandomMap(i *discordgo.Interaction, _ *discordgo.ApplicationCommandInteractionDataOption) {
	chosen, ok := party.PickMap(b.rand, b.loadList(b.maps))
	if !ok {
		b.respondText(i, msgNoMaps)
		return
	}
	b.respondEmbed(i, mapEmbed(chosen))
}

func (b *Bot) vaBan(i *discordgo.Interaction, sub *discordgo.ApplicationCommandInteractionDataOption) {
	banned := b.selector.Ban(banCount(sub))
	if len(banned) == 0 {
		b.respondText(i, msgNoAgents)
		return
	}
	b.respondEmbed(i, banEmbed(banned))
}

// voiceMembers resolves the caller's voice channel, replying and returning
// ok=false when the command cannot continue.
func (b *Bot) voiceMembers(i *discordgo.Interaction, command string) (names []string, ok bool) {
	names, inVoice := b.voice.ChannelMembers(i.GuildID, userID(i))
	if !inVoice {
		b.respondText(i, fmt.Sprintf(msgJoinVoiceFirst, command))
		return nil, false
	}
	if len(names) == 0 {
		b.respondText(i, msgEmptyVoice)
		return nil, false
	}
	return names, true
}

func (b *Bot) vaPunish(i *discordgo.Interaction, _ *discordgo.ApplicationCommandInteractionDataOption) {
	members, ok := b.voiceMembers(i, "/va punish")
	if !ok {
		return
	}
	list := b.loadList(b.punishments)
	if len(list) == 0 {
		b.respondText(i, msgNoPunishments)
		return
	}
	b.respondEmbed(i, punishEmbed(party.AssignPunishments(b.rand, members, list)))
}

func (b *Bot) vaRoleShuffle(i *discordgo.Interaction, _ *discordgo.ApplicationCommandInteractionDataOption) {
	members, ok := b.voiceMembers(i, "/va role_shuffle")
	if !ok {
		return
	}
	b.respondEmbed(i, roleEmbed(party.ShuffleRoles(b.rand, members)))
}

func (b *Bot) vaTeams(i *discordgo.Interaction, _ *discordgo.ApplicationCommandInteractionDataOption) {
	members, inVoice := b.voice.ChannelMembers(i.GuildID, userID(i))
	if !inVoice {
		b.respondText(i, fmt.Sprintf(msgJoinVoiceFirst, "/va teams"))
		return
	}
	teamA, teamB, err := party.SplitTeams(b.rand, members)
	if err != nil {
		b.respondText(i, msgTeamsNeedTwo)
		return
	}
	b.respondEmbed(i, teamsEmbed(teamA, teamB))
}

func (b *Bot) vaHelp(i *discordgo.Interaction, _ *discordgo.ApplicationCommandInteractionDataOption) {
	b.respondText(i, docs.DiscordHelp())
}

func (b *Bot) loadList(src ListSource) []string {
	if src == nil {
		return nil
	}
	return src.Load(b.logger)
}
