package dto

import "github.com/jhoicas/crm-clientes/internal/validation"

// ErrorResponse respuesta de error del BFF con código estable y mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidacionResponse respuesta 422 con los errores de formulario por campo.
type ValidacionResponse struct {
	Code    string                `json:"code"`
	Errores validation.FormErrors `json:"errores"`
}

// MensajeResponse respuesta de éxito que solo lleva un mensaje.
type MensajeResponse struct {
	Message string `json:"message"`
}
