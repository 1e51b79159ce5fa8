// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role an identity can have on the chat service.
type Role string

const (
	// RoleAdmin indicates a moderator allowed to flag messages and ban users.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular chat participant.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// ParseRole converts s to a Role. The second result is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", false
	}

	return role, true
}
