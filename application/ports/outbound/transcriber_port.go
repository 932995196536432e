package outbound

import (
	"context"

	"github.com/saransathish/Video-language-converter/domain"
)

type TranscribeParams struct {
	Media        domain.StorageRef
	LanguageCode string
}

type TranscriberPort interface {
	Transcribe(ctx context.Context, params TranscribeParams) (string, error)
}
