package middleware

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	jwksMu   sync.Mutex
	jwksKeys map[string]*rsa.PublicKey
)

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func jwksConfigured() bool {
	return os.Getenv("COGNITO_JWKS_URL") != ""
}

// jwksKeyfunc resuelve la clave pública del pool según el kid del token.
// El JWKS se descarga una sola vez y se cachea en memoria.
func jwksKeyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("token sin kid")
	}

	jwksMu.Lock()
	defer jwksMu.Unlock()

	if jwksKeys == nil {
		if err := fetchJWKS(os.Getenv("COGNITO_JWKS_URL")); err != nil {
			return nil, err
		}
	}

	key, ok := jwksKeys[kid]
	if !ok {
		return nil, fmt.Errorf("kid desconocido: %s", kid)
	}
	return key, nil
}

func fetchJWKS(url string) error {
	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		return fmt.Errorf("descarga JWKS: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("descarga JWKS: HTTP %d", resp.StatusCode())
	}

	var doc struct {
		Keys []jsonWebKey `json:"keys"`
	}
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return fmt.Errorf("parseo JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := rsaKey(k)
		if err != nil {
			return err
		}
		keys[k.Kid] = pub
	}
	jwksKeys = keys
	return nil
}

func rsaKey(k jsonWebKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("módulo inválido en JWKS: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("exponente inválido en JWKS: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
