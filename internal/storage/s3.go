package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Cota superior para cada llamada a S3; las subidas son avatares pequeños.
const callTimeout = 10 * time.Second

var (
	s3Client *s3.Client
	s3Bucket string
	s3Region string
)

func InitS3() error {
	s3Bucket = os.Getenv("AWS_BUCKET_NAME")
	s3Region = os.Getenv("AWS_REGION")

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(s3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("carga de configuración AWS: %w", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// UploadToS3 sube el fichero y devuelve su URL pública.
func UploadToS3(file multipart.File, filename, contentType, folder string) (string, error) {
	key := fmt.Sprintf("%s/%s", folder, filename)

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subida fallida: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s3Bucket, s3Region, key), nil
}

func DeleteFromS3(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("borrado fallido: %w", err)
	}
	return nil
}
