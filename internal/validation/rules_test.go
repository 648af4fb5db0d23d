package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-clientes/internal/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de campo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarEmail(t *testing.T) {
	assert.True(t, validation.ValidarEmail("test@example.com"))

	assert.False(t, validation.ValidarEmail("test.example.com"), "sin @ no es email")
	assert.False(t, validation.ValidarEmail("test@"), "dominio vacío no es email")
	assert.False(t, validation.ValidarEmail("@example.com"), "parte local vacía no es email")
	assert.False(t, validation.ValidarEmail("test@example"), "sin punto tras el dominio no es email")
	assert.False(t, validation.ValidarEmail("te st@example.com"), "con espacios no es email")
	assert.False(t, validation.ValidarEmail("a@b@example.com"), "doble @ no es email")
}

func TestValidarPassword(t *testing.T) {
	assert.True(t, validation.ValidarPassword("Password123"))
	assert.True(t, validation.ValidarPassword("MySecure1"))

	assert.False(t, validation.ValidarPassword("password"), "sin mayúscula ni dígito")
	assert.False(t, validation.ValidarPassword("PASSWORD123"), "sin minúscula")
	assert.False(t, validation.ValidarPassword("password123"), "sin mayúscula")
	assert.False(t, validation.ValidarPassword("Pass1"), "menos de 9 caracteres")
	assert.False(t, validation.ValidarPassword("Password123456789012"), "más de 20 caracteres")
	assert.False(t, validation.ValidarPassword("Passwords"), "sin dígito")
}

// El predicado de teléfono es laxo: cualquier cadena no vacía de hasta 20
// caracteres pasa, letras incluidas.
func TestValidarTelefono_EsLaxo(t *testing.T) {
	assert.True(t, validation.ValidarTelefono("1234567890"))
	assert.True(t, validation.ValidarTelefono("+1-234-567-8900"))
	assert.True(t, validation.ValidarTelefono("abcdefghij"), "acepta letras: regla laxa vigente")
	assert.True(t, validation.ValidarTelefono("12345678901234567890"), "20 caracteres es el límite incluido")

	assert.False(t, validation.ValidarTelefono(""), "vacío no pasa")
	assert.False(t, validation.ValidarTelefono("   "), "solo espacios no pasa")
	assert.False(t, validation.ValidarTelefono("123456789012345678901"), "21 caracteres excede el límite")
}

func TestValidarNombreYApellidos(t *testing.T) {
	assert.True(t, validation.ValidarNombre("Juan"))
	assert.True(t, validation.ValidarNombre("María"))
	assert.True(t, validation.ValidarNombre(strings.Repeat("a", 50)))
	assert.False(t, validation.ValidarNombre(""))
	assert.False(t, validation.ValidarNombre("   "))
	assert.False(t, validation.ValidarNombre(strings.Repeat("a", 51)))

	assert.True(t, validation.ValidarApellidos(strings.Repeat("b", 100)))
	assert.False(t, validation.ValidarApellidos(strings.Repeat("b", 101)))
}

func TestValidarIdentificacion_Limites(t *testing.T) {
	// Para toda cadena de largo en [1,20] el predicado es true; fuera, false.
	assert.True(t, validation.ValidarIdentificacion("1"))
	assert.True(t, validation.ValidarIdentificacion("12345678"))
	assert.True(t, validation.ValidarIdentificacion(strings.Repeat("9", 20)))

	assert.False(t, validation.ValidarIdentificacion(""))
	assert.False(t, validation.ValidarIdentificacion("  \t "), "solo blancos cuenta como vacío")
	assert.False(t, validation.ValidarIdentificacion(strings.Repeat("9", 21)))
}

func TestValidarDireccionYResena(t *testing.T) {
	assert.True(t, validation.ValidarDireccion("Calle 123"))
	assert.True(t, validation.ValidarDireccion(strings.Repeat("d", 200)))
	assert.False(t, validation.ValidarDireccion(strings.Repeat("d", 201)))
	assert.False(t, validation.ValidarDireccion(" "))

	assert.True(t, validation.ValidarResena("Cliente regular"))
	assert.False(t, validation.ValidarResena(strings.Repeat("r", 201)))
}

func TestValidarSexo(t *testing.T) {
	assert.True(t, validation.ValidarSexo("M"))
	assert.True(t, validation.ValidarSexo("F"))

	assert.False(t, validation.ValidarSexo(""))
	assert.False(t, validation.ValidarSexo("m"), "minúscula no es válida")
	assert.False(t, validation.ValidarSexo("X"))
	assert.False(t, validation.ValidarSexo("MF"))
}

func TestValidarFecha(t *testing.T) {
	assert.True(t, validation.ValidarFecha("1990-01-01"))
	assert.True(t, validation.ValidarFecha("2022-12-31T10:30:00Z"), "RFC3339 también parsea")
	assert.True(t, validation.ValidarFecha("1800-06-15"), "sin chequeo de rango: pasado lejano pasa")
	assert.True(t, validation.ValidarFecha("2999-01-01"), "futuro lejano pasa")

	assert.False(t, validation.ValidarFecha(""))
	assert.False(t, validation.ValidarFecha("no-es-fecha"))
	assert.False(t, validation.ValidarFecha("2022-13-45"), "mes y día inválidos")
}

func TestValidarCoincidencia(t *testing.T) {
	assert.True(t, validation.ValidarCoincidencia("Password123", "Password123"))
	assert.False(t, validation.ValidarCoincidencia("Password123", "Password456"))
	assert.False(t, validation.ValidarCoincidencia("a", "A"), "igualdad exacta, sensible a mayúsculas")
}
