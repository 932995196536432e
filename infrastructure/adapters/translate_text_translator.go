package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/aws/aws-sdk-go/service/translate/translateiface"

	"github.com/saransathish/Video-language-converter/application/ports/outbound"
	"github.com/saransathish/Video-language-converter/domain"
)

// Amazon Translate rejects requests above this many characters.
const translateChunkSize = 5000

type translateTextTranslator struct {
	translateSvc translateiface.TranslateAPI
	logger       outbound.LoggerPort
}

func NewTranslateTextTranslator(translateSvc translateiface.TranslateAPI, logger outbound.LoggerPort) outbound.TranslatorPort {
	return &translateTextTranslator{
		translateSvc: translateSvc,
		logger:       logger,
	}
}

// Translate passes the text to Amazon Translate and returns the service
// result untouched. Text above the service limit is translated in windows,
// in order, and joined with a single space.
func (t *translateTextTranslator) Translate(ctx context.Context, params outbound.TranslateParams) (string, error) {
	t.logger.InfoWithFields("Translating text", map[string]interface{}{
		"source": params.SourceLanguage,
		"target": params.TargetLanguage,
		"chars":  len(params.Text),
	})

	chunks := chunkText(params.Text, translateChunkSize)
	translated := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		out, err := t.translateSvc.TextWithContext(ctx, &translate.TextInput{
			Text:               aws.String(chunk),
			SourceLanguageCode: aws.String(params.SourceLanguage),
			TargetLanguageCode: aws.String(params.TargetLanguage),
		})
		if err != nil {
			t.logger.ErrorWithFields(err, "Translate call failed", map[string]interface{}{
				"source": params.SourceLanguage,
				"target": params.TargetLanguage,
			})
			return "", fmt.Errorf("%w: %v", domain.ErrTranslationFailed, err)
		}
		translated = append(translated, aws.StringValue(out.TranslatedText))
	}

	return strings.Join(translated, " "), nil
}

// chunkText splits text into rune-safe windows of at most size characters.
func chunkText(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
