// ABOUTME: Voice channel membership lookups against the gateway state cache.
// ABOUTME: Bots are excluded; names use the guild nickname, then the global name, then the username.
package bot

import "github.com/bwmarrin/discordgo"

// voiceDirectory reports who shares a voice channel with a user.
type voiceDirectory interface {
	// ChannelMembers returns the display names in userID's voice channel.
	// inVoice is false when the user is not connected.
	ChannelMembers(guildID, userID string) (names []string, inVoice bool)
}

type stateVoice struct {
	state *discordgo.State
}

func (v stateVoice) ChannelMembers(guildID, userID string) ([]string, bool) {
	if guildID == "" || userID == "" {
		return nil, false
	}
	states := v.voiceStates(guildID)

	var channelID string
	for _, vs := range states {
		if vs.UserID == userID {
			channelID = vs.ChannelID
			break
		}
	}
	if channelID == "" {
		return nil, false
	}

	names := []string{}
	for _, vs := range states {
		if vs.ChannelID != channelID {
			continue
		}
		m := vs.Member
		if cached, err := v.state.Member(guildID, vs.UserID); err == nil {
			m = cached
		}
		if m == nil || m.User == nil || m.User.Bot {
			continue
		}
		names = append(names, displayName(m))
	}
	return names, true
}

// voiceStates copies the guild's voice states under the state lock.
func (v stateVoice) voiceStates(guildID string) []discordgo.VoiceState {
	g, err := v.state.Guild(guildID)
	if err != nil {
		return nil
	}
	v.state.RLock()
	defer v.state.RUnlock()

	out := make([]discordgo.VoiceState, 0, len(g.VoiceStates))
	for _, vs := range g.VoiceStates {
		if vs != nil {
			out = append(out, *vs)
		}
	}
	return out
}

func displayName(m *discordgo.Member) string {
	switch {
	case m.Nick != "":
		return m.Nick
	case m.User.GlobalName != "":
		return m.User.GlobalName
	default:
		return m.User.Username
	}
}
