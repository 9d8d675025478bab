// ABOUTME: Selection engine producing five-agent compositions under the default, chaos, and hirano policies.
// ABOUTME: Also draws ban lists. Results never repeat an agent id and never fabricate entries.
package agents

import (
	"errors"
	"fmt"

	"github.com/2389-research/vabot/roll"
	"go.uber.org/zap"
)

// TeamSize is the number of agents in a full composition.
const TeamSize = 5

// ErrUnknownMode is returned by Select for an unrecognized mode name.
var ErrUnknownMode = errors.New("unknown selection mode")

// Mode names a team selection policy.
type Mode string

const (
	ModeDefault Mode = "default"
	ModeChaos   Mode = "chaos"
	ModeHirano  Mode = "hirano"
)

// Modes lists the team policies in display order.
var Modes = []Mode{ModeDefault, ModeChaos, ModeHirano}

// Title returns the mode's display title.
func (m Mode) Title() string {
	switch m {
	case ModeDefault:
		return "デフォルトモード"
	case ModeChaos:
		return "カオスモード"
	case ModeHirano:
		return "平野流モード"
	default:
		return string(m)
	}
}

// Selector draws agents from a catalog. A catalog that fails to load is
// treated as empty; the failure is logged.
type Selector struct {
	catalog Catalog
	rand    roll.Rand
	logger  *zap.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithRand sets the randomness source.
func WithRand(r roll.Rand) SelectorOption {
	return func(s *Selector) { s.rand = r }
}

// WithLogger sets the logger used for catalog load failures.
func WithLogger(l *zap.Logger) SelectorOption {
	return func(s *Selector) { s.logger = l }
}

// NewSelector creates a Selector over the given catalog.
func NewSelector(catalog Catalog, opts ...SelectorOption) *Selector {
	s := &Selector{
		catalog: catalog,
		rand:    roll.Global,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Selector) load() []Agent {
	agents, err := s.catalog.Load()
	if err != nil {
		s.logger.Warn("agent catalog unavailable", zap.Error(err))
		return nil
	}
	return agents
}

// Select runs the named team policy.
func (s *Selector) Select(mode Mode) ([]string, error) {
	switch mode {
	case ModeDefault:
		return s.Default(), nil
	case ModeChaos:
		return s.Chaos(), nil
	case ModeHirano:
		return s.Hirano(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Default picks one agent per role 1-4 plus one free pick from the rest.
// Missing roles leave their slot empty, so the result can be shorter than five.
func (s *Selector) Default() []string {
	agents := s.load()
	if len(agents) == 0 {
		return []string{}
	}

	used := make(map[string]bool, TeamSize)
	picked := make([]Agent, 0, TeamSize)

	for _, role := range teamRoles {
		candidates := unused(agents, used, func(a Agent) bool { return a.Role == role })
		if a, ok := roll.Choice(s.rand, candidates); ok {
			picked = append(picked, a)
			used[a.ID] = true
		}
	}

	if a, ok := roll.Choice(s.rand, unused(agents, used, nil)); ok {
		picked = append(picked, a)
	}

	roll.Shuffle(s.rand, picked)
	return names(truncate(picked, TeamSize))
}

// Chaos ignores roles and draws up to five agents uniformly.
func (s *Selector) Chaos() []string {
	agents := s.load()
	if len(agents) <= TeamSize {
		roll.Shuffle(s.rand, agents)
		return names(agents)
	}
	return names(roll.Sample(s.rand, agents, TeamSize))
}

// Hirano guarantees one controller when the catalog has any, and fills the
// remaining slots from every other agent.
func (s *Selector) Hirano() []string {
	agents := s.load()
	if len(agents) == 0 {
		return []string{}
	}

	used := make(map[string]bool, 1)
	picked := make([]Agent, 0, TeamSize)

	controllers := unused(agents, used, func(a Agent) bool { return a.Role == RoleController })
	if a, ok := roll.Choice(s.rand, controllers); ok {
		picked = append(picked, a)
		used[a.ID] = true
	}

	rest := unused(agents, used, nil)
	picked = append(picked, roll.Sample(s.rand, rest, TeamSize-len(picked))...)

	roll.Shuffle(s.rand, picked)
	return names(picked)
}

// Ban draws count agents to forbid, clamped to [1, catalog size].
func (s *Selector) Ban(count int) []string {
	agents := s.load()
	if len(agents) == 0 {
		return []string{}
	}
	count = max(1, min(count, len(agents)))
	return names(roll.Sample(s.rand, agents, count))
}

// unused returns agents not yet used that satisfy keep (nil keeps all).
func unused(agents []Agent, used map[string]bool, keep func(Agent) bool) []Agent {
	var out []Agent
	for _, a := range agents {
		if used[a.ID] {
			continue
		}
		if keep != nil && !keep(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func truncate(agents []Agent, n int) []Agent {
	if len(agents) > n {
		return agents[:n]
	}
	return agents
}

func names(agents []Agent) []string {
	out := make([]string, len(agents))
	for i, a := range agents {
		out[i] = a.Name
	}
	return out
}
