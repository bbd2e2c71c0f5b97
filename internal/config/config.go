package config

import (
	"os"
)

type Config struct {
	DBUrl string
	Port  string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	CognitoUserPoolID   string
	CognitoClientID     string
	CognitoClientSecret string
	CognitoJWKSURL      string

	S3Bucket string
}

func Load() *Config {
	return &Config{
		DBUrl:               os.Getenv("DATABASE_URL"),
		Port:                getEnv("PORT", "8080"),
		AWSRegion:           os.Getenv("AWS_REGION"),
		AWSAccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		CognitoUserPoolID:   os.Getenv("COGNITO_USER_POOL_ID"),
		CognitoClientID:     os.Getenv("COGNITO_CLIENT_ID"),
		CognitoClientSecret: os.Getenv("COGNITO_CLIENT_SECRET"),
		CognitoJWKSURL:      os.Getenv("COGNITO_JWKS_URL"),
		S3Bucket:            os.Getenv("AWS_BUCKET_NAME"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
