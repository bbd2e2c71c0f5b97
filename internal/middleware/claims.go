package middleware

import (
	"github.com/golang-jwt/jwt/v5"
)

// Orden de resolución del username dentro del token: el primer claim
// presente y no vacío gana.
var usernameClaims = []string{
	"username",
	"cognito:username",
	"preferred_username",
	"email",
}

func usernameFromClaims(claims jwt.MapClaims) string {
	for _, key := range usernameClaims {
		if value, ok := claims[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// parseClaims extrae los claims del token. Si hay un JWKS configurado la
// firma RS256 se verifica contra las claves del pool; si no, se decodifica
// sin verificar y se confía en la capa OIDC que precede a estos servicios.
func parseClaims(tokenStr string) (jwt.MapClaims, error) {
	if jwksConfigured() {
		token, err := jwt.Parse(tokenStr, jwksKeyfunc)
		if err != nil || !token.Valid {
			if err == nil {
				err = jwt.ErrTokenUnverifiable
			}
			return nil, err
		}
		return token.Claims.(jwt.MapClaims), nil
	}

	token, _, err := new(jwt.Parser).ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	return token.Claims.(jwt.MapClaims), nil
}
