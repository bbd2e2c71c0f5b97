package cognito

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

var (
	client       *cognitoidentityprovider.Client
	clientID     string
	clientSecret string
)

// Cada llamada al proveedor es síncrona, sin reintentos, y acotada a 5s.
const callTimeout = 5 * time.Second

func Init() error {
	clientID = os.Getenv("COGNITO_CLIENT_ID")
	clientSecret = os.Getenv("COGNITO_CLIENT_SECRET")

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("carga de configuración AWS: %w", err)
	}

	client = cognitoidentityprovider.NewFromConfig(cfg)
	return nil
}

// Tokens es el paquete de tokens que devuelve Cognito, más el username
// canónico resuelto localmente.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int32  `json:"expiresIn"`
	Username     string `json:"username"`
}

// SecretHash calcula base64(HMAC-SHA256(clientSecret, username+clientId)).
// Cognito lo exige en cada llamada cuando el app client tiene secret.
func SecretHash(username string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignUp registra la cuenta en el pool y devuelve el sub opaco asignado.
func SignUp(username, email, password string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	out, err := client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(clientID),
		SecretHash: aws.String(SecretHash(username)),
		Username:   aws.String(username),
		Password:   aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("preferred_username"), Value: aws.String(username)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error registering user in Cognito: %w", err)
	}
	return aws.ToString(out.UserSub), nil
}

func Authenticate(username, password string) (*Tokens, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	out, err := client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(clientID),
		AuthParameters: map[string]string{
			"USERNAME":    username,
			"PASSWORD":    password,
			"SECRET_HASH": SecretHash(username),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error authenticating user: %w", err)
	}

	result := out.AuthenticationResult
	if result == nil {
		return nil, fmt.Errorf("error authenticating user: empty authentication result")
	}

	return &Tokens{
		AccessToken:  aws.ToString(result.AccessToken),
		IDToken:      aws.ToString(result.IdToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		TokenType:    aws.ToString(result.TokenType),
		ExpiresIn:    result.ExpiresIn,
		Username:     username,
	}, nil
}

func Confirm(username, code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	_, err := client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(clientID),
		SecretHash:       aws.String(SecretHash(username)),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return fmt.Errorf("error confirming user: %w", err)
	}
	return nil
}

// Refresh renueva los tokens de acceso. Cognito no rota el refresh token en
// este flujo, así que se devuelve el original sin cambios.
func Refresh(refreshToken, username string) (*Tokens, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	out, err := client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		ClientId: aws.String(clientID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
			"SECRET_HASH":   SecretHash(username),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error refreshing token: %w", err)
	}

	result := out.AuthenticationResult
	if result == nil {
		return nil, fmt.Errorf("error refreshing token: empty authentication result")
	}

	return &Tokens{
		AccessToken:  aws.ToString(result.AccessToken),
		IDToken:      aws.ToString(result.IdToken),
		RefreshToken: refreshToken,
		TokenType:    aws.ToString(result.TokenType),
		ExpiresIn:    result.ExpiresIn,
		Username:     username,
	}, nil
}

// SetCredentials fija el par clientId/clientSecret sin pasar por Init.
// Lo usan los tests para ejercitar el cálculo del secret hash.
func SetCredentials(id, secret string) {
	clientID = id
	clientSecret = secret
}
