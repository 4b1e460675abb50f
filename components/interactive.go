package components

import (
	"github.com/yohamta/donburi"
)

// Role is the semantic tag of a clickable object.
type Role int

const (
	RoleDrawer Role = iota
	RoleDiamond
)

func (r Role) String() string {
	switch r {
	case RoleDrawer:
		return "drawer"
	case RoleDiamond:
		return "diamond"
	}
	return "unknown"
}

type InteractiveData struct {
	ID   string // opaque identity
	Name string // e.g. drawer_0_0
	Role Role
}

var Interactive = donburi.NewComponentType[InteractiveData]()
