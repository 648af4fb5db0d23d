// Package state contiene los dos stores de estado de la aplicación: el de
// autenticación y el de clientes. Cada store posee su registro de estado y lo
// muta exclusivamente a través de un conjunto cerrado de acciones aplicadas
// por un reducer puro (estado, acción) -> estado. El original era de hilo
// único; aquí el surface HTTP es concurrente, así que el despacho y la lectura
// van protegidos por mutex. Los reducers siguen siendo funciones puras.
package state

import (
	"sync"

	"github.com/jhoicas/crm-clientes/internal/domain/entity"
	"github.com/jhoicas/crm-clientes/pkg/logger"
	"github.com/jhoicas/crm-clientes/pkg/token"
)

// Persistencia es el contrato mínimo que el store de auth necesita de la
// persistencia de sesión. Lo implementa session.Store.
type Persistencia interface {
	Obtener(clave string) string
	Guardar(valores map[string]string) error
	Eliminar(claves ...string) error
}

// Claves persistidas de la sesión.
const (
	ClaveToken              = "token"
	ClaveUserID             = "userId"
	ClaveUsername           = "username"
	ClaveRememberMe         = "rememberMe"
	ClaveRememberedUsername = "rememberedUsername"
)

// AuthState registro de sesión del cliente.
// Invariante: IsAuthenticated == (Token != "").
// Error es *string para que "hay error" sea Error != nil, nunca un chequeo de
// cadena vacía.
type AuthState struct {
	Token           string
	UserID          string
	Username        string
	IsAuthenticated bool
	Loading         bool
	Error           *string
}

// AuthTipo enumeración cerrada de acciones del store de auth.
type AuthTipo int

const (
	LoginStart AuthTipo = iota
	LoginSuccess
	LoginFail
	Logout
	SetError
	ClearError
)

// AuthAccion acción etiquetada con su payload.
type AuthAccion struct {
	Tipo     AuthTipo
	Token    string // LoginSuccess
	UserID   string // LoginSuccess
	Username string // LoginSuccess
	Mensaje  string // LoginFail, SetError
}

// reducirAuth es el mapeo puro y total (estado, acción) -> estado.
func reducirAuth(st AuthState, a AuthAccion) AuthState {
	switch a.Tipo {
	case LoginStart:
		st.Loading = true
		st.Error = nil
	case LoginSuccess:
		st.Token = a.Token
		st.UserID = a.UserID
		st.Username = a.Username
		st.IsAuthenticated = true
		st.Loading = false
		st.Error = nil
	case LoginFail:
		// No limpia los campos de sesión existentes.
		st.Loading = false
		m := a.Mensaje
		st.Error = &m
	case Logout:
		st.Token = ""
		st.UserID = ""
		st.Username = ""
		st.IsAuthenticated = false
		st.Error = nil
		// Loading queda como esté.
	case SetError:
		m := a.Mensaje
		st.Error = &m
	case ClearError:
		st.Error = nil
	}
	return st
}

// AuthStore store de autenticación: estado + persistencia de sesión.
type AuthStore struct {
	mu           sync.Mutex
	st           AuthState
	persistencia Persistencia
	log          *logger.Logger
}

// NewAuthStore construye el store sembrando el estado desde la persistencia.
// Un token persistido ya expirado se descarta (y se limpia) en lugar de
// reconstruir una sesión que solo produciría 401s.
func NewAuthStore(p Persistencia, log *logger.Logger) *AuthStore {
	s := &AuthStore{persistencia: p, log: log}

	tok := p.Obtener(ClaveToken)
	if tok != "" && token.Expirado(tok) {
		log.Warn().Msg("token persistido expirado, descartando sesión")
		if err := p.Eliminar(ClaveToken, ClaveUserID, ClaveUsername); err != nil {
			log.Warn().Err(err).Msg("no se pudo limpiar la sesión expirada")
		}
		tok = ""
	}

	s.st = AuthState{
		Token:           tok,
		UserID:          p.Obtener(ClaveUserID),
		Username:        p.Obtener(ClaveUsername),
		IsAuthenticated: tok != "",
	}
	return s
}

// Dispatch aplica una acción al estado bajo el lock del store.
func (s *AuthStore) Dispatch(a AuthAccion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = reducirAuth(s.st, a)
}

// State devuelve una copia del estado actual.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// Sesion devuelve la sesión vigente como entidad de dominio.
func (s *AuthStore) Sesion() entity.Sesion {
	st := s.State()
	return entity.Sesion{Token: st.Token, UserID: st.UserID, Username: st.Username}
}

// Login persiste token/userId/username y luego despacha LoginSuccess.
// La escritura precede al despacho: si falla, el estado no queda autenticado
// con una sesión que no sobreviviría un reinicio.
func (s *AuthStore) Login(tok, userID, username string) error {
	err := s.persistencia.Guardar(map[string]string{
		ClaveToken:    tok,
		ClaveUserID:   userID,
		ClaveUsername: username,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("persistir sesión")
		return err
	}
	s.Dispatch(AuthAccion{Tipo: LoginSuccess, Token: tok, UserID: userID, Username: username})
	s.log.Info().Str("username", username).Msg("usuario logueado")
	return nil
}

// Logout elimina todas las claves persistidas (incluidas las de recuérdame)
// y luego despacha Logout.
func (s *AuthStore) Logout() error {
	err := s.persistencia.Eliminar(
		ClaveToken, ClaveUserID, ClaveUsername,
		ClaveRememberMe, ClaveRememberedUsername,
	)
	if err != nil {
		s.log.Warn().Err(err).Msg("eliminar sesión persistida")
	}
	s.Dispatch(AuthAccion{Tipo: Logout})
	s.log.Info().Msg("usuario deslogueado")
	return err
}
