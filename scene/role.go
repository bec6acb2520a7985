package scene

import "fmt"

// Role tags the semantic part of the scene an object represents.
type Role int

const (
	RoleMoon Role = iota
	RoleTrunk
	RoleBranch
	RoleCrown
	RoleHouse
	RoleDoor
	RoleWindow
	RoleChimney
	RoleRoof
	roleCount
)

var roleNames = [roleCount]string{
	"moon", "trunk", "branch", "crown", "house", "door", "window", "chimney", "roof",
}

// AllRoles lists every role in declaration order.
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}
