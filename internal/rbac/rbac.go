package rbac

import "fmt"

// Role is the closed set of account roles. The role is only consulted
// directly for the permission-change action; everything else is gated
// by the numeric permission level.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Level is the ordered permission level. Higher levels include the
// access of every lower level.
type Level int

const (
	LevelRead   Level = 0
	LevelWrite  Level = 1
	LevelDelete Level = 2
)

const errInvalidRoleFmt = "invalid role %q: must be one of admin, manager, user"

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf(errInvalidRoleFmt, s)
	}
	return role, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// DefaultLevel maps a role to its permission level at account creation.
// The two fields are stored independently afterwards and may diverge
// through an explicit permission change.
func DefaultLevel(r Role) Level {
	switch r {
	case RoleAdmin:
		return LevelDelete
	case RoleManager:
		return LevelWrite
	default:
		return LevelRead
	}
}

func ValidLevel(l Level) bool {
	return l >= LevelRead && l <= LevelDelete
}

// Authorize grants access iff the held level meets or exceeds the
// required level.
func Authorize(have, required Level) bool {
	return have >= required
}

// IsAdmin reports whether the role is exactly admin. Used for the
// permission-change action, which checks role rather than level.
func IsAdmin(r Role) bool {
	return r == RoleAdmin
}
