// internal/services/storage_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
)

// StorageService owns vehicle image handling. With S3 configured, uploads
// go through short-lived presigned PUT URLs and the application only streams
// objects back out; without it, files land on local disk.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadTicket struct {
	UploadURL  string `json:"uploadURL"`
	ObjectPath string `json:"objectPath"`
}

type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

type UploadResult struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

var (
	ErrStorageNotConfigured = errors.New("object storage not configured")
	ErrObjectNotFound       = errors.New("object not found")
	ErrNotAnImage           = errors.New("only image files allowed")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
)

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Local-disk mode for small deployments
		return &StorageService{config: config}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// RequestUploadURL issues a presigned PUT URL so the client uploads the file
// directly to object storage, bypassing the application process.
func (s *StorageService) RequestUploadURL(fileName string) (*UploadTicket, error) {
	if s.s3Client == nil {
		return nil, ErrStorageNotConfigured
	}

	objectID := s.generateObjectName(fileName)
	key := fmt.Sprintf("%s/uploads/%s", strings.Trim(s.config.AWS.PrivateDir, "/"), objectID)

	req, _ := s.s3Client.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(time.Duration(s.config.Upload.PresignTTL) * time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &UploadTicket{
		UploadURL:  url,
		ObjectPath: "/objects/uploads/" + objectID,
	}, nil
}

// GetObject fetches a previously uploaded object for streaming back through
// the application.
func (s *StorageService) GetObject(objectPath string) (*StoredObject, error) {
	if s.s3Client == nil {
		return nil, ErrStorageNotConfigured
	}

	key := fmt.Sprintf("%s/%s", strings.Trim(s.config.AWS.PrivateDir, "/"), strings.TrimPrefix(objectPath, "/"))

	out, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound") {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to fetch object: %w", err)
	}

	obj := &StoredObject{Body: out.Body, ContentType: "application/octet-stream"}
	if out.ContentType != nil {
		obj.ContentType = *out.ContentType
	}
	if out.ContentLength != nil {
		obj.Size = *out.ContentLength
	}
	return obj, nil
}

// SaveLocal writes an uploaded image to the local uploads directory and
// returns its public URL. Used when no object storage is configured.
func (s *StorageService) SaveLocal(file multipart.File, header *multipart.FileHeader, folder string) (*UploadResult, error) {
	maxSize := int64(s.config.Upload.MaxSizeMB) * 1024 * 1024
	if header.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	if err := s.validateImage(file); err != nil {
		return nil, err
	}

	if folder == "" {
		folder = "vehicles"
	}

	dir := filepath.Join(s.config.Upload.LocalDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := s.generateObjectName(header.Filename)
	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("%s/%s/%s", s.config.Upload.PublicPath, folder, fileName),
		FileName: fileName,
	}, nil
}

func (s *StorageService) generateObjectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	return uuid.New().String() + ext
}

func (s *StorageService) validateImage(file multipart.File) error {
	// Check file signature, then rewind for the actual write
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}
	buffer = buffer[:n]

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if !isImageSignature(buffer) {
		return ErrNotAnImage
	}
	return nil
}

func isImageSignature(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}

	// PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}

	// GIF
	if len(buffer) >= 6 && (string(buffer[0:6]) == "GIF87a" || string(buffer[0:6]) == "GIF89a") {
		return true
	}

	// WebP
	if len(buffer) >= 12 && string(buffer[0:4]) == "RIFF" && string(buffer[8:12]) == "WEBP" {
		return true
	}

	return false
}
