// Package fechas normaliza fechas entre los formatos que maneja la aplicación:
// el backend devuelve fechas en distintos formatos (ISO, RFC3339 con hora),
// los formularios trabajan con yyyy-mm-dd y las vistas muestran dd/mm/yyyy.
package fechas

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// LayoutISO es el formato de los inputs de fecha (yyyy-mm-dd).
	LayoutISO = "2006-01-02"
	// LayoutVista es el formato de presentación (dd/mm/yyyy).
	LayoutVista = "02/01/2006"
)

var isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// layoutsBackend son los formatos aceptados al parsear fechas recibidas del backend.
var layoutsBackend = []string{
	LayoutISO,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// Parsear convierte una cadena de fecha en time.Time probando los formatos conocidos.
func Parsear(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fechas: cadena vacía")
	}
	for _, layout := range layoutsBackend {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fechas: formato no reconocido: %q", s)
}

// ParaInput normaliza una fecha del backend a yyyy-mm-dd para un input de formulario.
// Si ya viene en ISO se devuelve tal cual; si no se puede parsear devuelve "".
func ParaInput(s string) string {
	if s == "" {
		return ""
	}
	if isoRe.MatchString(s) {
		return s
	}
	t, err := Parsear(s)
	if err != nil {
		return ""
	}
	return t.UTC().Format(LayoutISO)
}

// ParaVista formatea una fecha como dd/mm/yyyy. Devuelve "" si no es parseable.
func ParaVista(s string) string {
	t, err := Parsear(s)
	if err != nil {
		return ""
	}
	return t.UTC().Format(LayoutVista)
}

// AISO convierte dd/mm/yyyy a yyyy-mm-dd. Devuelve "" si la entrada no tiene ese formato.
func AISO(s string) string {
	t, err := time.Parse(LayoutVista, strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return t.Format(LayoutISO)
}
