package http_test

import (
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/jhoicas/crm-clientes/internal/application/auth"
	appcliente "github.com/jhoicas/crm-clientes/internal/application/cliente"
	infraapi "github.com/jhoicas/crm-clientes/internal/infrastructure/api"
	"github.com/jhoicas/crm-clientes/internal/infrastructure/session"
	"github.com/jhoicas/crm-clientes/internal/state"
	httpRouter "github.com/jhoicas/crm-clientes/internal/interfaces/http"
	"github.com/jhoicas/crm-clientes/pkg/logger"
)

// entorno aplicación completa cableada contra un backend falso.
type entorno struct {
	app       *fiber.App
	sesiones  *session.Store
	authStore *state.AuthStore
}

func nuevoEntorno(t *testing.T, backend stdhttp.HandlerFunc) *entorno {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	sesiones, err := session.New(filepath.Join(t.TempDir(), "sesion.json"))
	require.NoError(t, err)

	authStore := state.NewAuthStore(sesiones, logger.Nop())
	clienteStore := state.NewClienteStore(logger.Nop())

	apiClient := infraapi.New(srv.URL, 5*time.Second,
		func() string { return sesiones.Obtener(state.ClaveToken) }, logger.Nop())

	authUC := appauth.NewUseCase(apiClient, authStore, sesiones, logger.Nop())
	clienteUC := appcliente.NewUseCase(apiClient, clienteStore, authStore, logger.Nop())

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      httpRouter.NewAuthHandler(authUC, authStore),
		Cliente:   httpRouter.NewClienteHandler(clienteUC, clienteStore),
		AuthStore: authStore,
	})

	return &entorno{app: app, sesiones: sesiones, authStore: authStore}
}

func tokenVigente(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	return s
}

func peticion(t *testing.T, app *fiber.App, method, path, body string) (*stdhttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginEndpoint_Exitoso(t *testing.T) {
	tok := tokenVigente(t)
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"token": tok, "userid": "user-1", "username": "admin",
		})
	})

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"Password123"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cuerpo map[string]any
	require.NoError(t, json.Unmarshal(raw, &cuerpo))
	assert.Equal(t, true, cuerpo["isAuthenticated"])
	assert.Equal(t, "admin", cuerpo["username"])
	_, expone := cuerpo["token"]
	assert.False(t, expone, "el token nunca sale en la respuesta del BFF")

	assert.Equal(t, tok, env.sesiones.Obtener(state.ClaveToken), "la sesión quedó persistida")
}

func TestLoginEndpoint_Validacion(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("con formulario inválido no debe llegar nada al backend")
	})

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/auth/login", `{"username":"","password":""}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var cuerpo struct {
		Code    string             `json:"code"`
		Errores map[string]*string `json:"errores"`
	}
	require.NoError(t, json.Unmarshal(raw, &cuerpo))
	assert.Equal(t, "VALIDATION", cuerpo.Code)
	require.NotNil(t, cuerpo.Errores["username"])
	assert.Equal(t, "Este campo es requerido", *cuerpo.Errores["username"])
}

func TestLoginEndpoint_CredencialesIncorrectas(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusUnauthorized)
	})

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"mala"}`)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var cuerpo struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &cuerpo))
	assert.Equal(t, "AUTH_FAILED", cuerpo.Code)
	assert.Equal(t, "Usuario o contraseña incorrectos", cuerpo.Message)
}

func TestLogoutEndpoint(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {})
	env.authStore.Dispatch(state.AuthAccion{Tipo: state.LoginSuccess, Token: tokenVigente(t), UserID: "u", Username: "admin"})

	resp, _ := peticion(t, env.app, fiber.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.False(t, env.authStore.State().IsAuthenticated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_SinSesion(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("sin sesión nada debe llegar al backend")
	})

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/clientes/buscar", `{}`)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "SESION_REQUERIDA")
}

func TestClientes_SesionExpirada(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("con sesión expirada nada debe llegar al backend")
	})

	vencido, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	env.authStore.Dispatch(state.AuthAccion{Tipo: state.LoginSuccess, Token: vencido, UserID: "u", Username: "admin"})

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/clientes/buscar", `{}`)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "SESION_EXPIRADA")
	assert.False(t, env.authStore.State().IsAuthenticated, "la sesión expirada fuerza el logout")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscarEndpoint(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/api/Cliente/Listado"):
			io.WriteString(w, `[{"id":"c1","identificacion":"101","nombre":"Juan","apellidos":"Pérez"}]`)
		default:
			w.WriteHeader(stdhttp.StatusNotFound)
		}
	})
	require.NoError(t, env.authStore.Login(tokenVigente(t), "user-1", "admin"))

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/clientes/buscar", `{"nombre":"juan"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"nombre":"Juan"`)
}

func TestCrearEndpoint_Validacion(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("con formulario inválido no debe llegar nada al backend")
	})
	require.NoError(t, env.authStore.Login(tokenVigente(t), "user-1", "admin"))

	resp, raw := peticion(t, env.app, fiber.MethodPost, "/api/clientes", `{"nombre":"Juan"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(raw), `"apellidos"`)
	assert.Contains(t, string(raw), "Este campo es requerido")
}

func TestEliminarEndpoint_DevuelveListadoRecargado(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/api/Cliente/Eliminar/"):
			w.WriteHeader(stdhttp.StatusOK)
		case strings.HasSuffix(r.URL.Path, "/api/Cliente/Listado"):
			io.WriteString(w, `[{"id":"c2","identificacion":"102","nombre":"María","apellidos":"Gómez"}]`)
		default:
			w.WriteHeader(stdhttp.StatusNotFound)
		}
	})
	require.NoError(t, env.authStore.Login(tokenVigente(t), "user-1", "admin"))

	resp, raw := peticion(t, env.app, fiber.MethodDelete, "/api/clientes/c1", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cuerpo struct {
		Message  string           `json:"message"`
		Clientes []map[string]any `json:"clientes"`
	}
	require.NoError(t, json.Unmarshal(raw, &cuerpo))
	assert.Equal(t, "Cliente eliminado correctamente", cuerpo.Message)
	require.Len(t, cuerpo.Clientes, 1)
	assert.Equal(t, "c2", cuerpo.Clientes[0]["id"])
}

func TestInteresesEndpoint(t *testing.T) {
	env := nuevoEntorno(t, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		io.WriteString(w, `[{"id":"i1","descripcion":"Deportes"}]`)
	})
	require.NoError(t, env.authStore.Login(tokenVigente(t), "user-1", "admin"))

	resp, raw := peticion(t, env.app, fiber.MethodGet, "/api/intereses", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "Deportes")
}
