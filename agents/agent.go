// ABOUTME: Agent records and roles as they appear in the agent catalog file.
// ABOUTME: Role 4 (controller) is the distinguished role the hirano policy guarantees.
package agents

import "fmt"

// Role is the agent's class. Values match the integers in the catalog file.
type Role int

const (
	RoleDuelist    Role = 1
	RoleInitiator  Role = 2
	RoleSentinel   Role = 3
	RoleController Role = 4
)

// teamRoles are the roles the default policy fills one slot each for, in order.
var teamRoles = []Role{RoleDuelist, RoleInitiator, RoleSentinel, RoleController}

// String returns the Japanese role name used in the bot's messages.
func (r Role) String() string {
	switch r {
	case RoleDuelist:
		return "デュエリスト"
	case RoleInitiator:
		return "イニシエーター"
	case RoleSentinel:
		return "センチネル"
	case RoleController:
		return "コントローラー"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Agent is one playable character.
type Agent struct {
	ID      string
	Name    string
	Role    Role
	Enabled bool
}
