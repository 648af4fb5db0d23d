package api

import (
	"context"
	"net/http"
)

// Rutas de autenticación del backend.
const (
	rutaLogin    = "api/Authenticate/login"
	rutaRegister = "api/Authenticate/register"
)

// CredencialesLogin payload de api/Authenticate/login.
type CredencialesLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RespuestaLogin respuesta del backend al login.
type RespuestaLogin struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
	UserID     string `json:"userid"`
	Username   string `json:"username"`
}

// DatosRegistro payload de api/Authenticate/register.
type DatosRegistro struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RespuestaRegistro respuesta del backend al registro.
type RespuestaRegistro struct {
	Message string `json:"message"`
}

// Login autentica contra el backend y devuelve token y datos de usuario.
func (c *Client) Login(ctx context.Context, username, password string) (*RespuestaLogin, error) {
	var out RespuestaLogin
	err := c.do(ctx, http.MethodPost, rutaLogin, CredencialesLogin{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register crea un usuario nuevo. No autentica: el usuario debe loguearse después.
func (c *Client) Register(ctx context.Context, username, email, password string) (*RespuestaRegistro, error) {
	var out RespuestaRegistro
	err := c.do(ctx, http.MethodPost, rutaRegister, DatosRegistro{Username: username, Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
