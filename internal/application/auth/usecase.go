// Package auth contiene los casos de uso de autenticación: login, registro y
// logout. El flujo es siempre validar → llamar al backend → actualizar el
// store → escribir la persistencia de sesión.
package auth

import (
	"context"

	"github.com/jhoicas/crm-clientes/internal/domain"
	"github.com/jhoicas/crm-clientes/internal/infrastructure/api"
	"github.com/jhoicas/crm-clientes/internal/state"
	"github.com/jhoicas/crm-clientes/internal/validation"
	"github.com/jhoicas/crm-clientes/pkg/logger"
)

// Mensajes por defecto cuando el backend no trae mensaje estructurado.
const (
	FallbackLogin    = "Usuario o contraseña incorrectos"
	FallbackRegistro = "Error al registrar el usuario"
	MensajeRegistro  = "Usuario creado correctamente"
)

// AuthAPI es lo que el caso de uso necesita del cliente del backend.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*api.RespuestaLogin, error)
	Register(ctx context.Context, username, email, password string) (*api.RespuestaRegistro, error)
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	api          AuthAPI
	store        *state.AuthStore
	persistencia state.Persistencia
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(a AuthAPI, store *state.AuthStore, p state.Persistencia, log *logger.Logger) *UseCase {
	return &UseCase{api: a, store: store, persistencia: p, log: log}
}

// Login valida el formulario, autentica contra el backend y deja la sesión en
// el store y la persistencia. Si la validación falla devuelve los errores de
// formulario y no emite ninguna petición. rememberMe controla las claves
// rememberMe/rememberedUsername.
func (uc *UseCase) Login(ctx context.Context, username, password string, rememberMe bool) (validation.FormErrors, error) {
	errores := validation.ValidarLoginForm(username, password)
	if validation.HasErrors(errores) {
		return errores, domain.ErrEntradaInvalida
	}

	uc.store.Dispatch(state.AuthAccion{Tipo: state.LoginStart})

	resp, err := uc.api.Login(ctx, username, password)
	if err != nil {
		mensaje := api.Mensaje(err, FallbackLogin)
		uc.store.Dispatch(state.AuthAccion{Tipo: state.LoginFail, Mensaje: mensaje})
		uc.log.Error().Str("username", username).Str("error", mensaje).Msg("login falló")
		return nil, err
	}

	if rememberMe {
		if err := uc.persistencia.Guardar(map[string]string{
			state.ClaveRememberMe:         "true",
			state.ClaveRememberedUsername: username,
		}); err != nil {
			uc.log.Warn().Err(err).Msg("persistir recuérdame")
		}
	} else {
		if err := uc.persistencia.Eliminar(state.ClaveRememberMe, state.ClaveRememberedUsername); err != nil {
			uc.log.Warn().Err(err).Msg("limpiar recuérdame")
		}
	}

	if err := uc.store.Login(resp.Token, resp.UserID, resp.Username); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Msg("login exitoso")
	return nil, nil
}

// Register valida el formulario y registra el usuario. Devuelve el mensaje de
// éxito del backend (o el fijo). Registrarse no autentica.
func (uc *UseCase) Register(ctx context.Context, username, email, password, confirmPassword string) (validation.FormErrors, string, error) {
	errores := validation.ValidarRegisterForm(username, email, password, confirmPassword)
	if validation.HasErrors(errores) {
		return errores, "", domain.ErrEntradaInvalida
	}

	resp, err := uc.api.Register(ctx, username, email, password)
	if err != nil {
		mensaje := api.Mensaje(err, FallbackRegistro)
		uc.log.Error().Str("username", username).Str("error", mensaje).Msg("registro falló")
		return nil, mensaje, err
	}

	mensaje := resp.Message
	if mensaje == "" {
		mensaje = MensajeRegistro
	}
	uc.log.Info().Str("username", username).Str("email", email).Msg("registro exitoso")
	return nil, mensaje, nil
}

// Logout elimina la sesión persistida (incluido recuérdame) y limpia el store.
func (uc *UseCase) Logout() error {
	return uc.store.Logout()
}

// UsuarioRecordado devuelve el username recordado si el flag rememberMe está
// activo, o "" si no hay nada que precargar.
func (uc *UseCase) UsuarioRecordado() string {
	if uc.persistencia.Obtener(state.ClaveRememberMe) != "true" {
		return ""
	}
	return uc.persistencia.Obtener(state.ClaveRememberedUsername)
}
