package adapters

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/saransathish/Video-language-converter/application/ports/outbound"
	"github.com/saransathish/Video-language-converter/domain"
)

type s3MediaStore struct {
	s3Svc  s3iface.S3API
	logger outbound.LoggerPort
}

func NewS3MediaStore(s3Svc s3iface.S3API, logger outbound.LoggerPort) outbound.MediaStorePort {
	return &s3MediaStore{
		s3Svc:  s3Svc,
		logger: logger,
	}
}

func (s *s3MediaStore) UploadFile(ctx context.Context, params outbound.UploadFileParams) (domain.StorageRef, error) {
	file, err := os.Open(params.LocalPath)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to open local file", map[string]interface{}{
			"path": params.LocalPath,
		})
		return domain.StorageRef{}, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "Failed to close local file")
		}
	}()

	info, err := file.Stat()
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to stat local file", map[string]interface{}{
			"path": params.LocalPath,
		})
		return domain.StorageRef{}, err
	}

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(params.Destination.Bucket),
		Key:           aws.String(params.Destination.Key),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentTypeForKey(params.Destination.Key)),
	}

	_, err = s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": params.Destination.Bucket,
			"key":    params.Destination.Key,
		})
		return domain.StorageRef{}, err
	}

	s.logger.DebugWithFields("Successfully uploaded object to S3", map[string]interface{}{
		"uri": params.Destination.URI(),
	})

	return params.Destination, nil
}

func (s *s3MediaStore) PutAudio(ctx context.Context, params outbound.PutAudioParams) (domain.StorageRef, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(params.Destination.Bucket),
		Key:           aws.String(params.Destination.Key),
		Body:          bytes.NewReader(params.Content),
		ContentLength: aws.Int64(int64(len(params.Content))),
		ContentType:   aws.String("audio/mpeg"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload audio to S3", map[string]interface{}{
			"bucket": params.Destination.Bucket,
			"key":    params.Destination.Key,
		})
		return domain.StorageRef{}, err
	}

	s.logger.DebugWithFields("Successfully uploaded audio to S3", map[string]interface{}{
		"uri": params.Destination.URI(),
	})

	return params.Destination, nil
}

func contentTypeForKey(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".mp4":
		return "video/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	default:
		return "application/octet-stream"
	}
}
