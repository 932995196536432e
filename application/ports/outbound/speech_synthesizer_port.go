package outbound

import (
	"context"
)

type SynthesizeParams struct {
	Text         string
	LanguageCode string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) ([]byte, error)
}
