package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword genera el hash bcrypt de una contraseña con el costo por
// defecto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IsHashed reporta si la credencial almacenada ya es un hash bcrypt. Las
// credenciales heredadas de instalaciones viejas se guardaron en texto plano
// y se migran al primer login exitoso.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// VerifyCredential compara la contraseña contra la credencial almacenada.
// Devuelve si coincide y si la credencial está en formato heredado (texto
// plano) y debe rehashearse.
func VerifyCredential(stored, password string) (ok bool, legacy bool) {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}
	return stored == password, true
}
