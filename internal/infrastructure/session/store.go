// Package session implementa la persistencia durable de la sesión: un archivo
// JSON de clave-valor leído y escrito vía Viper. Guarda las cinco claves de
// sesión (token, userId, username, rememberMe, rememberedUsername) como
// cadenas planas, igual que el localStorage de la aplicación original.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Store persistencia de sesión respaldada por archivo.
// Viper normaliza las claves a minúsculas; el store hace lo mismo en memoria
// para que Obtener("userId") y Obtener("userid") sean equivalentes.
type Store struct {
	mu      sync.Mutex
	path    string
	valores map[string]string
}

// New abre (o inicializa vacío) el archivo de sesión en path.
func New(path string) (*Store, error) {
	s := &Store{path: path, valores: map[string]string{}}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return s, nil
		}
		return nil, fmt.Errorf("session: leer %s: %w", path, err)
	}
	for _, clave := range v.AllKeys() {
		s.valores[clave] = v.GetString(clave)
	}
	return s, nil
}

// Obtener devuelve el valor de la clave, o "" si no existe.
func (s *Store) Obtener(clave string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valores[strings.ToLower(clave)]
}

// Guardar escribe los pares dados y persiste el archivo.
func (s *Store) Guardar(valores map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for clave, valor := range valores {
		s.valores[strings.ToLower(clave)] = valor
	}
	return s.escribir()
}

// Eliminar borra las claves dadas y persiste el archivo.
func (s *Store) Eliminar(claves ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, clave := range claves {
		delete(s.valores, strings.ToLower(clave))
	}
	return s.escribir()
}

// escribir vuelca el mapa completo al archivo. Viper no soporta borrar claves
// de una instancia existente, así que cada escritura reconstruye el archivo
// desde el estado en memoria.
func (s *Store) escribir() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: crear directorio: %w", err)
		}
	}
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	for clave, valor := range s.valores {
		v.Set(clave, valor)
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("session: escribir %s: %w", s.path, err)
	}
	return nil
}
