package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOClient — хранилище пакетов обновлений ПО
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient создает клиент для MinIO
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Создаем bucket если не существует
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadPackage загружает пакет обновления и возвращает имя объекта и размер
func (m *MinIOClient) UploadPackage(fileData []byte, originalFilename string) (string, int64, error) {
	ctx := context.Background()

	// Уникальное имя объекта на латинице
	ext := filepath.Ext(originalFilename)
	objectName := fmt.Sprintf("update_%s_%d%s",
		uuid.New().String()[:8],
		time.Now().Unix(),
		ext)

	// Определяем content type по расширению пакета
	contentType := "application/octet-stream"
	switch strings.ToLower(ext) {
	case ".zip":
		contentType = "application/zip"
	case ".gz", ".tgz":
		contentType = "application/gzip"
	case ".msi":
		contentType = "application/x-msi"
	case ".exe":
		contentType = "application/vnd.microsoft.portable-executable"
	case ".deb":
		contentType = "application/vnd.debian.binary-package"
	case ".rpm":
		contentType = "application/x-rpm"
	}

	reader := bytes.NewReader(fileData)
	size := int64(len(fileData))
	_, err := m.client.PutObject(ctx, m.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to upload package: %w", err)
	}

	logrus.Infof("Package %s uploaded successfully", objectName)
	return objectName, size, nil
}

// DeletePackage удаляет пакет обновления
func (m *MinIOClient) DeletePackage(objectName string) error {
	ctx := context.Background()

	err := m.client.RemoveObject(ctx, m.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	logrus.Infof("Package %s deleted successfully", objectName)
	return nil
}

// PackageURL возвращает временный URL для скачивания пакета (24 часа)
func (m *MinIOClient) PackageURL(objectName string) (string, error) {
	ctx := context.Background()

	url, err := m.client.PresignedGetObject(ctx, m.bucketName, objectName, 24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}
