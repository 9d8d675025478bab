// ABOUTME: Discord bot wiring: session setup, command registration on Ready, and interaction dispatch.
// ABOUTME: Handlers write through a small responder interface so they can be exercised without a gateway.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/2389-research/vabot/agents"
	"github.com/2389-research/vabot/llm"
	"github.com/2389-research/vabot/roll"
	"github.com/2389-research/vabot/textgen"
)

// DefaultGenerationTimeout bounds one /ai call.
const DefaultGenerationTimeout = 90 * time.Second

// Generator produces AI texts. *textgen.Proxy satisfies it.
type Generator interface {
	Generate(ctx context.Context, params textgen.Params) (*textgen.Result, error)
}

// ListSource yields a fresh string list on every call. party.ListFile satisfies it.
type ListSource interface {
	Load(logger *zap.Logger) []string
}

// responder is the subset of *discordgo.Session used to answer interactions.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot serves the /va and /ai command groups.
type Bot struct {
	session *discordgo.Session
	out     responder
	voice   voiceDirectory

	guildID     string
	selector    *agents.Selector
	generator   Generator
	catalog     *llm.Catalog
	maps        ListSource
	punishments ListSource
	rand        roll.Rand
	logger      *zap.Logger
	timeout     time.Duration

	commands map[string]commandHandler
}

type commandHandler func(i *discordgo.Interaction, opt *discordgo.ApplicationCommandInteractionDataOption)

// Option configures a Bot.
type Option func(*Bot)

// WithGuild registers commands to one guild instead of globally.
func WithGuild(id string) Option {
	return func(b *Bot) { b.guildID = id }
}

// WithSelector sets the agent selector.
func WithSelector(s *agents.Selector) Option {
	return func(b *Bot) { b.selector = s }
}

// WithGenerator sets the AI text generator.
func WithGenerator(g Generator) Option {
	return func(b *Bot) { b.generator = g }
}

// WithCatalog sets the model catalog used for /ai model choices.
func WithCatalog(c *llm.Catalog) Option {
	return func(b *Bot) { b.catalog = c }
}

// WithMaps sets the map list source.
func WithMaps(src ListSource) Option {
	return func(b *Bot) { b.maps = src }
}

// WithPunishments sets the punishment list source.
func WithPunishments(src ListSource) Option {
	return func(b *Bot) { b.punishments = src }
}

// WithRand sets the randomness source for party tools.
func WithRand(r roll.Rand) Option {
	return func(b *Bot) { b.rand = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithGenerationTimeout bounds each /ai call.
func WithGenerationTimeout(d time.Duration) Option {
	return func(b *Bot) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// New creates a Bot that logs in with token.
func New(token string, opts ...Option) (*Bot, error) {
	if token == "" {
		return nil, errors.New("discord token is empty")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates

	b := newBot(session, stateVoice{state: session.State}, opts...)
	b.session = session
	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	return b, nil
}

func newBot(out responder, voice voiceDirectory, opts ...Option) *Bot {
	b := &Bot{
		out:     out,
		voice:   voice,
		catalog: llm.DefaultCatalog(),
		rand:    roll.Global,
		logger:  zap.NewNop(),
		timeout: DefaultGenerationTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.selector == nil {
		b.selector = agents.NewSelector(agents.StaticCatalog(nil), agents.WithRand(b.rand))
	}
	b.commands = map[string]commandHandler{
		"va/random":       b.vaRandom,
		"va/random_map":   b.vaRandomMap,
		"va/ban":          b.vaBan,
		"va/punish":       b.vaPunish,
		"va/role_shuffle": b.vaRoleShuffle,
		"va/teams":        b.vaTeams,
		"va/help":         b.vaHelp,
		"ai/tactic":       b.aiHandler(textgen.ModeTactic, false),
		"ai/tactic_hard":  b.aiHandler(textgen.ModeTactic, true),
		"ai/punish":       b.aiHandler(textgen.ModePunish, false),
		"ai/punish_hard":  b.aiHandler(textgen.ModePunish, true),
	}
	return b
}

// Run opens the gateway connection and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	b.logger.Info("discord session opened")

	<-ctx.Done()

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}
	b.logger.Info("discord session closed")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("discord ready", zap.String("user", r.User.Username))

	registered, err := s.ApplicationCommandBulkOverwrite(r.User.ID, b.guildID, Commands(b.catalog))
	if err != nil {
		b.logger.Error("register commands", zap.Error(err))
		return
	}
	b.logger.Info("commands registered", zap.Int("count", len(registered)), zap.String("guild", b.guildID))
}

func (b *Bot) onInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	b.handle(ic.Interaction)
}

func (b *Bot) handle(i *discordgo.Interaction) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if len(data.Options) == 0 {
			return
		}
		sub := data.Options[0]
		h, ok := b.commands[data.Name+"/"+sub.Name]
		if !ok {
			b.logger.Warn("unknown command", zap.String("command", data.Name), zap.String("subcommand", sub.Name))
			return
		}
		h(i, sub)
	case discordgo.InteractionMessageComponent:
		b.onComponent(i)
	}
}

// userID returns the invoking user's id for guild and DM interactions.
func userID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) respond(i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	err := b.out.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.logger.Error("respond to interaction", zap.String("interaction", i.ID), zap.Error(err))
	}
}

func (b *Bot) respondText(i *discordgo.Interaction, text string) {
	b.respond(i, &discordgo.InteractionResponseData{Content: truncate(text)})
}

func (b *Bot) respondEmbed(i *discordgo.Interaction, embed *discordgo.MessageEmbed) {
	b.respond(i, &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}})
}
