// ABOUTME: Test doubles for the bot: a recording responder, a scripted voice directory and generator.
// ABOUTME: Also builds slash-command and button interactions the way the gateway delivers them.
package bot

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/textgen"
)

type recordingResponder struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
}

func (r *recordingResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append(r.responses, resp)
	return nil
}

func (r *recordingResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.followups = append(r.followups, data)
	return &discordgo.Message{Content: data.Content}, nil
}

func (r *recordingResponder) last() *discordgo.InteractionResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.responses) == 0 {
		return nil
	}
	return r.responses[len(r.responses)-1]
}

type fakeVoice struct {
	inVoice bool
	names   []string
}

func (f fakeVoice) ChannelMembers(_, _ string) ([]string, bool) {
	return f.names, f.inVoice
}

type fakeGenerator struct {
	params []textgen.Params
	result *textgen.Result
	err    error
	ctxErr error
	block  bool
}

func (g *fakeGenerator) Generate(ctx context.Context, p textgen.Params) (*textgen.Result, error) {
	g.params = append(g.params, p)
	if g.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return g.result, g.err
}

type staticList []string

func (s staticList) Load(_ *zap.Logger) []string { return s }

func testCatalog() agents.StaticCatalog {
	return agents.StaticCatalog{
		{ID: "jett", Name: "ジェット", Role: agents.RoleDuelist, Enabled: true},
		{ID: "reyna", Name: "レイナ", Role: agents.RoleDuelist, Enabled: true},
		{ID: "sova", Name: "ソーヴァ", Role: agents.RoleInitiator, Enabled: true},
		{ID: "skye", Name: "スカイ", Role: agents.RoleInitiator, Enabled: true},
		{ID: "sage", Name: "セージ", Role: agents.RoleSentinel, Enabled: true},
		{ID: "killjoy", Name: "キルジョイ", Role: agents.RoleSentinel, Enabled: true},
		{ID: "omen", Name: "オーメン", Role: agents.RoleController, Enabled: true},
		{ID: "brimstone", Name: "ブリムストーン", Role: agents.RoleController, Enabled: true},
	}
}

func commandInteraction(group, sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:      "i1",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "g1",
		Member:  &discordgo.Member{User: &discordgo.User{ID: "u1"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: group,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name:    sub,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: opts,
			}},
		},
	}
}

func buttonInteraction(customID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:      "i2",
		Type:    discordgo.InteractionMessageComponent,
		GuildID: "g1",
		Member:  &discordgo.Member{User: &discordgo.User{ID: "u1"}},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent},
	}
}

func intOption(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func stringOption(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}
