package outbound

import (
	"context"
)

type TranslateParams struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
}

type TranslatorPort interface {
	Translate(ctx context.Context, params TranslateParams) (string, error)
}
