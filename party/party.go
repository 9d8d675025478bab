// ABOUTME: Party tools for voice-channel members: map pick, punishment roulette, role shuffle, team split.
// ABOUTME: All functions take an injectable roll.Rand and operate on display names only.
package party

import (
	"errors"
	"fmt"
	"slices"

	"github.com/2389-research/vabot/roll"
)

// ErrNotEnoughMembers is returned by SplitTeams for fewer than two members.
var ErrNotEnoughMembers = errors.New("at least 2 members are needed to split teams")

// PickMap chooses one map uniformly.
func PickMap(r roll.Rand, maps []string) (string, bool) {
	return roll.Choice(r, maps)
}

// Assignment pairs a member with the text assigned to them.
type Assignment struct {
	Member string
	Text   string
}

// AssignPunishments gives every member a punishment. When the list has at
// least as many entries as members each member gets a different one;
// otherwise the shuffled list repeats in order.
func AssignPunishments(r roll.Rand, members, punishments []string) []Assignment {
	if len(members) == 0 || len(punishments) == 0 {
		return []Assignment{}
	}

	pool := slices.Clone(punishments)
	roll.Shuffle(r, pool)

	var selected []string
	if len(pool) >= len(members) {
		selected = roll.Sample(r, pool, len(members))
	} else {
		selected = make([]string, len(members))
		for i := range selected {
			selected[i] = pool[i%len(pool)]
		}
	}

	out := make([]Assignment, len(members))
	for i, m := range members {
		out[i] = Assignment{Member: m, Text: selected[i]}
	}
	return out
}

// PartyRole is one of the five fixed in-match duties.
type PartyRole struct {
	Title    string
	sentence string
}

// Sentence renders the announcement for the member holding the role.
func (p PartyRole) Sentence(member string) string {
	return fmt.Sprintf(p.sentence, member)
}

// PartyRoles are handed out in this order.
var PartyRoles = []PartyRole{
	{Title: "IGL（作戦コール担当）", sentence: "この試合のIGLは **%s** です！ 全ラウンドの作戦コールをお願いします。"},
	{Title: "エントリー担当", sentence: "この試合のエントリー担当は **%s** です！ サイトに入る先頭をお願いします。"},
	{Title: "スパイク担当", sentence: "この試合のスパイク担当は **%s** です！ スパイクの管理と設置をお願いします。"},
	{Title: "オペレーター担当", sentence: "この試合のオペレーター担当は **%s** です！ お金に余裕があるラウンドではオペを優先してください。"},
	{Title: "情報共有係", sentence: "この試合の情報共有係は **%s** です！ 敵位置や音の情報を積極的にコールしてください。"},
}

// FreeSlotText is shown for members beyond the fifth.
const FreeSlotText = "この試合は役職なし（自由枠）です。好きに暴れてください。"

// RoleAssignment is the result of ShuffleRoles for one member. Role is nil
// for a free slot.
type RoleAssignment struct {
	Member string
	Role   *PartyRole
}

// Text returns the announcement for the assignment.
func (a RoleAssignment) Text() string {
	if a.Role == nil {
		return FreeSlotText
	}
	return a.Role.Sentence(a.Member)
}

// ShuffleRoles shuffles members and hands out PartyRoles to the first five.
func ShuffleRoles(r roll.Rand, members []string) []RoleAssignment {
	shuffled := slices.Clone(members)
	roll.Shuffle(r, shuffled)

	out := make([]RoleAssignment, len(shuffled))
	for i, m := range shuffled {
		out[i] = RoleAssignment{Member: m}
		if i < len(PartyRoles) {
			out[i].Role = &PartyRoles[i]
		}
	}
	return out
}

// SplitTeams shuffles members into two teams; team B gets the extra member
// for odd counts.
func SplitTeams(r roll.Rand, members []string) (teamA, teamB []string, err error) {
	if len(members) < 2 {
		return nil, nil, ErrNotEnoughMembers
	}
	shuffled := slices.Clone(members)
	roll.Shuffle(r, shuffled)
	mid := len(shuffled) / 2
	return shuffled[:mid], shuffled[mid:], nil
}

// PadPlayers keeps the first n names and fills the rest with Player<k>.
func PadPlayers(names []string, n int) []string {
	out := make([]string, 0, n)
	for _, name := range names {
		if len(out) == n {
			break
		}
		out = append(out, name)
	}
	for len(out) < n {
		out = append(out, fmt.Sprintf("Player%d", len(out)+1))
	}
	return out
}
