// ABOUTME: Handlers for the /ai generators: defer, generate under a deadline, then follow up.
// ABOUTME: Failures are reported as "エラー: " plus the user-facing description of the error.
package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/2389-research/vabot/textgen"
)

const errorPrefix = "エラー: "

// Default content for the punishment generators when none is given.
const defaultPunishContent = "おまかせ"

func (b *Bot) aiHandler(mode textgen.Mode, hard bool) commandHandler {
	return func(i *discordgo.Interaction, sub *discordgo.ApplicationCommandInteractionDataOption) {
		params := textgen.Params{Mode: mode, Hard: hard}
		if o := option(sub, "model"); o != nil && o.Type == discordgo.ApplicationCommandOptionInteger {
			params.Model = int(o.IntValue())
		}
		if o := option(sub, "content"); o != nil && o.Type == discordgo.ApplicationCommandOptionString {
			params.Content = o.StringValue()
		}
		if params.Content == "" && mode == textgen.ModePunish {
			params.Content = defaultPunishContent
		}
		b.generate(i, params)
	}
}

func (b *Bot) generate(i *discordgo.Interaction, params textgen.Params) {
	err := b.out.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Error("defer interaction", zap.Error(err))
		return
	}

	var text string
	if b.generator == nil {
		text = errorPrefix + textgen.MsgService
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		res, err := b.generator.Generate(ctx, params)
		cancel()
		if err != nil {
			text = errorPrefix + textgen.Describe(err)
		} else {
			text = res.Text
		}
	}

	if _, err := b.out.FollowupMessageCreate(i, true, &discordgo.WebhookParams{Content: truncate(text)}); err != nil {
		b.logger.Error("send followup", zap.Error(err))
	}
}
