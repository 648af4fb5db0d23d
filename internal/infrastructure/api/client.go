// Package api implementa el cliente REST del backend CRM. Inyecta el token
// bearer desde la persistencia de sesión en cada petición autenticada, añade
// un X-Request-ID de correlación y registra método, ruta, estado y duración
// de cada llamada.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-clientes/pkg/logger"
)

// maxBody límite de lectura del cuerpo de respuesta.
const maxBody = 1 << 20

// ErrorAPI error de transporte o del backend con el mensaje estructurado que
// haya devuelto (campo message del cuerpo), si lo hubo.
type ErrorAPI struct {
	StatusCode int
	Mensaje    string
}

func (e *ErrorAPI) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("api: HTTP %d: %s", e.StatusCode, e.Mensaje)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

// Mensaje devuelve el mensaje estructurado del backend si err lo trae, o el
// fallback fijo de la operación. Es la política de mensajes de error al
// usuario: mensaje del backend si existe, si no la cadena por operación.
func Mensaje(err error, fallback string) string {
	var apiErr *ErrorAPI
	if errors.As(err, &apiErr) && apiErr.Mensaje != "" {
		return apiErr.Mensaje
	}
	return fallback
}

// TokenFuente entrega el token bearer vigente ("" si no hay sesión).
type TokenFuente func() string

// Client cliente HTTP del backend CRM.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFuente
	log        *logger.Logger
}

// New construye el cliente. baseURL es la raíz del backend
// (ej. https://pruebareactjs.test-class.com/Api/).
func New(baseURL string, timeout time.Duration, token TokenFuente, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		log:        log,
	}
}

// do ejecuta una petición JSON contra el backend. body nil omite el cuerpo;
// out nil descarta la respuesta. Errores HTTP >= 400 vuelven como *ErrorAPI.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	inicio := time.Now()
	resp, err := c.httpClient.Do(req)
	duracion := time.Since(inicio)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("llamada HTTP fallida")
		if ctx.Err() != nil {
			return fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("api: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", duracion).
		Msg("api call")

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &ErrorAPI{StatusCode: resp.StatusCode}
		var cuerpo struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(rawBody, &cuerpo); jsonErr == nil {
			apiErr.Mensaje = cuerpo.Message
		}
		return apiErr
	}

	if out != nil && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("api: deserializar respuesta: %w", err)
		}
	}
	return nil
}
