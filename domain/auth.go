package domain

// Credentials is the login payload. Transient: validated, posted, never stored.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration is the sign-up payload.
type Registration struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// MessageResponse is the backend's generic acknowledgement envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
