package validation

import (
	"fmt"
	"regexp"
)

// Límites por campo (conteo de caracteres crudos, sin conciencia de grafemas).
const (
	NombreMax         = 50
	ApellidosMax      = 100
	IdentificacionMax = 20
	TelefonoMax       = 20
	DireccionMax      = 200
	ResenaMax         = 200
	PasswordMin       = 9
	PasswordMax       = 20
)

// Expresiones de formato.
var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	sexoRe  = regexp.MustCompile(`^[MF]$`)
)

// Mensajes de validación mostrados al usuario.
const (
	MsgRequerido            = "Este campo es requerido"
	MsgEmailInvalido        = "El email no es válido"
	MsgPasswordDebil        = "La contraseña debe tener 9-20 caracteres, una mayúscula, una minúscula y números"
	MsgPasswordsNoCoinciden = "Las contraseñas no coinciden"
	MsgFormatoInvalido      = "El formato no es válido"
	MsgFechaInvalida        = "La fecha no es válida"
)

// MsgLongitudMaxima mensaje parametrizado por el límite del campo.
func MsgLongitudMaxima(max int) string {
	return fmt.Sprintf("No puede exceder %d caracteres", max)
}
