package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username  string  `json:"username"  validate:"required,max=150"`
	Password  string  `json:"password"  validate:"required,max=72"`
	Role      string  `json:"role"      validate:"omitempty,max=100"`
	Name      *string `json:"name"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Hierarchy *string `json:"hierarchy"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	Name      *string `json:"name"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Hierarchy *string `json:"hierarchy"`
}

// SessionUser is the user summary returned with a login token.
type SessionUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expires_in"` // seconds
	User      SessionUser `json:"user"`
}

type RegisterResponse struct {
	Message string          `json:"message"`
	User    UsuarioResponse `json:"user"`
}

// MessageResponse is the body of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
