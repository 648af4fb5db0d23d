// Package validation implementa las reglas de validación de campos y los
// validadores de formulario del CRM. Las reglas son predicados puros sobre
// valores primitivos; los validadores de formulario las componen en un mapa
// campo -> mensaje de error (FormErrors).
//
// Los chequeos de longitud cuentan caracteres crudos (runas); el recorte de
// espacios aplica solo a la prueba de vacío, nunca al valor almacenado.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/crm-clientes/pkg/fechas"
)

// ValidarEmail acepta parte local no vacía, dominio no vacío, un punto literal
// y un sufijo tipo TLD; sin espacios ni '@' adicionales.
func ValidarEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidarPassword exige longitud 9-20 con al menos una minúscula, una
// mayúscula y un dígito. No exige símbolos.
func ValidarPassword(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < PasswordMin || n > PasswordMax {
		return false
	}
	var minuscula, mayuscula, digito bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			minuscula = true
		case unicode.IsUpper(r):
			mayuscula = true
		case unicode.IsDigit(r):
			digito = true
		}
	}
	return minuscula && mayuscula && digito
}

// ValidarCoincidencia compara por igualdad exacta (confirmación de contraseña).
func ValidarCoincidencia(valor1, valor2 string) bool {
	return valor1 == valor2
}

// ValidarTelefono acepta cualquier cadena no vacía de hasta TelefonoMax
// caracteres. No restringe el alfabeto: letras y símbolos pasan.
func ValidarTelefono(telefono string) bool {
	return strings.TrimSpace(telefono) != "" && utf8.RuneCountInString(telefono) <= TelefonoMax
}

// ValidarNombre exige al menos un carácter no blanco y máximo NombreMax crudos.
func ValidarNombre(nombre string) bool {
	return strings.TrimSpace(nombre) != "" && utf8.RuneCountInString(nombre) <= NombreMax
}

// ValidarApellidos exige al menos un carácter no blanco y máximo ApellidosMax crudos.
func ValidarApellidos(apellidos string) bool {
	return strings.TrimSpace(apellidos) != "" && utf8.RuneCountInString(apellidos) <= ApellidosMax
}

// ValidarIdentificacion exige al menos un carácter no blanco y máximo IdentificacionMax crudos.
func ValidarIdentificacion(identificacion string) bool {
	return strings.TrimSpace(identificacion) != "" && utf8.RuneCountInString(identificacion) <= IdentificacionMax
}

// ValidarDireccion exige al menos un carácter no blanco y máximo DireccionMax crudos.
func ValidarDireccion(direccion string) bool {
	return strings.TrimSpace(direccion) != "" && utf8.RuneCountInString(direccion) <= DireccionMax
}

// ValidarResena exige al menos un carácter no blanco y máximo ResenaMax crudos.
func ValidarResena(resena string) bool {
	return strings.TrimSpace(resena) != "" && utf8.RuneCountInString(resena) <= ResenaMax
}

// ValidarSexo acepta exactamente "M" o "F".
func ValidarSexo(sexo string) bool {
	return sexoRe.MatchString(sexo)
}

// ValidarFecha acepta cualquier fecha de calendario parseable, sin chequeo de
// rango: fechas muy pasadas o futuras pasan.
func ValidarFecha(fecha string) bool {
	if fecha == "" {
		return false
	}
	_, err := fechas.Parsear(fecha)
	return err == nil
}
