// Package token inspecciona tokens JWT emitidos por el backend CRM.
// El cliente no conoce el secreto de firma, así que el parseo es sin
// verificación: solo se leen los claims registrados para decidir si el
// token persistido sigue siendo utilizable.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expirado indica si el token tiene un claim exp ya vencido.
// Un token malformado se considera expirado (no sirve para autenticar).
// Un token sin claim exp se considera vigente: la decisión final es del backend.
func Expirado(tokenString string) bool {
	return ExpiradoEn(tokenString, time.Now())
}

// ExpiradoEn es Expirado evaluado contra un instante dado (inyectable en tests).
func ExpiradoEn(tokenString string, ahora time.Time) bool {
	if tokenString == "" {
		return true
	}
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(ahora)
}
