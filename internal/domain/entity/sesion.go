package entity

// Sesion registro de la sesión autenticada que mantiene el cliente.
type Sesion struct {
	Token    string
	UserID   string
	Username string
}

// Autenticada indica si la sesión tiene un token.
func (s Sesion) Autenticada() bool {
	return s.Token != ""
}
