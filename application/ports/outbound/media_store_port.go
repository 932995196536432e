package outbound

import (
	"context"

	"github.com/saransathish/Video-language-converter/domain"
)

type UploadFileParams struct {
	LocalPath   string
	Destination domain.StorageRef
}

type PutAudioParams struct {
	Destination domain.StorageRef
	Content     []byte
}

type MediaStorePort interface {
	UploadFile(ctx context.Context, params UploadFileParams) (domain.StorageRef, error)
	PutAudio(ctx context.Context, params PutAudioParams) (domain.StorageRef, error)
}
