package model

// Role is the closed set of account roles. Tiers are ordered: a higher tier
// satisfies any lower requirement.
type Role string

const (
	RoleUser    Role = "USER"
	RoleDealer  Role = "DEALER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// Tier returns the ordinal position of the role in the permission ladder.
// Unknown roles rank below USER so a corrupted role string never grants access.
func (r Role) Tier() int {
	switch r {
	case RoleUser:
		return 0
	case RoleDealer:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	default:
		return -1
	}
}

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	return r.Tier() >= 0
}

// Privileged reports whether the role requires login credentials.
func (r Role) Privileged() bool {
	return r.Tier() >= RoleDealer.Tier()
}

// HighestTier returns the maximum tier among a user's roles.
// An empty set ranks below USER.
func HighestTier(roles []string) int {
	max := -1
	for _, r := range roles {
		if t := Role(r).Tier(); t > max {
			max = t
		}
	}
	return max
}

// AnyPrivileged reports whether the role set contains a Dealer+ role.
func AnyPrivileged(roles []string) bool {
	return HighestTier(roles) >= RoleDealer.Tier()
}

// ParseRoles validates a slice of role strings and returns them typed.
func ParseRoles(raw []string) ([]Role, bool) {
	out := make([]Role, 0, len(raw))
	for _, s := range raw {
		r := Role(s)
		if !r.IsValid() {
			return nil, false
		}
		out = append(out, r)
	}
	return out, true
}
