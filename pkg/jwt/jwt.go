package jwt

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el rol de la aplicación.
// Se añade Role para que el middleware de autorización pueda tomar decisiones
// sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "USER" | "DEALER" | "ADMIN"
}

// decodeSecret decodifica el secreto base64 configurado a la llave HMAC.
func decodeSecret(secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("jwt: secret no es base64 válido: %w", err)
	}
	return key, nil
}

// Generate genera un token JWT firmado (HS256) con subject=username, el rol,
// issued-at ahora y expiración ahora+expMinutes.
func Generate(secret, username, role string, expMinutes int) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// parseClaims verifica firma, estructura y expiración. Cualquier fallo cierra
// el acceso: nunca se devuelven claims de un token no verificado.
func parseClaims(secret, tokenString string) (*Claims, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Parse valida el token y devuelve subject (username) y role.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (username, role string, err error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Role, nil
}

// Validate responde si el token es válido para el username dado: firma
// verificada, no expirado y subject igual (sin distinguir mayúsculas).
func Validate(secret, tokenString, username string) bool {
	sub, _, err := Parse(secret, tokenString)
	if err != nil {
		return false
	}
	return strings.EqualFold(sub, username)
}

// ExtractUsername devuelve el subject del claim set verificado.
func ExtractUsername(secret, tokenString string) (string, error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractExpiration devuelve la expiración del claim set verificado.
func ExtractExpiration(secret, tokenString string) (time.Time, error) {
	claims, err := parseClaims(secret, tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("jwt: token sin expiración")
	}
	return claims.ExpiresAt.Time, nil
}
