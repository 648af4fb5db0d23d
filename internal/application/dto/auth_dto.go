package dto

// LoginRequest entrada del login local (se valida antes de tocar el backend).
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterRequest entrada del registro.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SesionResponse instantánea de la sesión para la UI. Nunca expone el token.
type SesionResponse struct {
	IsAuthenticated    bool    `json:"isAuthenticated"`
	UserID             string  `json:"userId,omitempty"`
	Username           string  `json:"username,omitempty"`
	Loading            bool    `json:"loading"`
	Error              *string `json:"error"`
	RememberedUsername string  `json:"rememberedUsername,omitempty"`
}
