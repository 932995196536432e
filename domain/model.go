package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTranscriptionFailed  = errors.New("transcription job failed")
	ErrTranscriptionTimeout = errors.New("transcription polling budget exhausted")
	ErrTranslationFailed    = errors.New("translation failed")
	ErrSynthesisFailed      = errors.New("speech synthesis failed")
)

type TranscriptionJobStatus string

const (
	JobSubmitted  TranscriptionJobStatus = "submitted"
	JobInProgress TranscriptionJobStatus = "in_progress"
	JobCompleted  TranscriptionJobStatus = "completed"
	JobFailed     TranscriptionJobStatus = "failed"
)

// Terminal reports whether no further status changes can occur.
func (s TranscriptionJobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// StorageRef identifies a single object in the store.
type StorageRef struct {
	Bucket string
	Key    string
}

func NewStorageRef(bucket string, key string) StorageRef {
	return StorageRef{
		Bucket: bucket,
		Key:    key,
	}
}

func (r StorageRef) URI() string {
	return fmt.Sprintf("s3://%s/%s", r.Bucket, r.Key)
}

type TranscriptionJob struct {
	Name          string
	Status        TranscriptionJobStatus
	TranscriptURI string
	FailureReason string
}
