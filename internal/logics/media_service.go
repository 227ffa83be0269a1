package logics

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultPresignTTL is the media link lifetime used when none is configured.
const DefaultPresignTTL = 5 * time.Minute

// Presigner is the slice of s3.PresignClient the media service needs.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// MediaService hands out time-limited read links to private media objects.
// It never stores or serves the objects themselves.
type MediaService struct {
	presigner  Presigner
	bucketName string
	ttl        time.Duration
}

func NewMediaService(presigner Presigner, bucketName string, ttl time.Duration) *MediaService {
	if ttl <= 0 {
		ttl = DefaultPresignTTL
	}
	return &MediaService{
		presigner:  presigner,
		bucketName: bucketName,
		ttl:        ttl,
	}
}

// PresignedURL generates a presigned GET URL for the given object key.
func (ms *MediaService) PresignedURL(ctx context.Context, key string) (string, error) {
	result, err := ms.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ms.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ms.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return result.URL, nil
}
