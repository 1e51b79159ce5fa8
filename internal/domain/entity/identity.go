package entity

// Identity is the signed-in application user as seen by the chat service.
// It is resolved once, on the first authenticated session, and never mutated.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Role        Role   `json:"role"`
}

// IsAdmin reports whether the identity may use moderator actions.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// ChatUser returns the chat-service user record for this identity.
func (i *Identity) ChatUser() ChatUser {
	return ChatUser{
		ID:    i.ID,
		Name:  i.DisplayName,
		Image: i.AvatarURL,
	}
}

// AuthSession is the result of an identity-provider sign-in.
type AuthSession struct {
	UserID          string
	IDToken         string
	IsAuthenticated bool
	Anonymous       bool
	Claims          map[string]any
}

// ClaimString returns the string value of a custom claim, or "" when absent.
func (s *AuthSession) ClaimString(name string) string {
	if s == nil || s.Claims == nil {
		return ""
	}
	v, _ := s.Claims[name].(string)

	return v
}
