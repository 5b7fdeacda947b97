package models

// Identity is the authenticated user as reported by the backend.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session pairs an identity with the credential token that backs it.
// An identity without a token (or the reverse) is not a valid session.
type Session struct {
	Identity *Identity
	Token    string
}

// Authenticated reports whether both halves of the session are present.
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Token != ""
}
