package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoAutenticado       = errors.New("sesión no autenticada")
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrSesionExpirada      = errors.New("la sesión ha expirado")
)
