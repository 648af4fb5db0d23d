// Package texto contiene utilidades de normalización de texto para búsqueda.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone (NFD), elimina marcas combinantes y recompone (NFC).
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarBusqueda prepara un filtro de búsqueda: recorta espacios y elimina
// tildes/diacríticos para que "Pérez" y "Perez" produzcan el mismo filtro.
func NormalizarBusqueda(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		return s
	}
	return out
}
