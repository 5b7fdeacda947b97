package schemas

// LoginRequest represents the body of a password login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// GoogleAuthRequest represents the body of a federated login request.
// The token is the opaque credential issued by the provider; the role
// is attached client-side and the backend decides what is granted.
type GoogleAuthRequest struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest represents the body of a registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthUser is the user object inside a successful auth response.
type AuthUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse represents the backend's reply to any auth endpoint.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}
