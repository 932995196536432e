package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"

	"github.com/saransathish/Video-language-converter/application/ports/outbound"
	"github.com/saransathish/Video-language-converter/config"
	"github.com/saransathish/Video-language-converter/domain"
)

// Amazon Polly limits plain-text input per SynthesizeSpeech request.
const synthesisChunkSize = 1500

// voiceLanguageCodes maps bare translation codes to the regional codes Polly
// voices are registered under.
var voiceLanguageCodes = map[string]string{
	"en": "en-US",
	"nl": "nl-NL",
	"es": "es-ES",
	"fr": "fr-FR",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-PT",
	"ja": "ja-JP",
	"ko": "ko-KR",
	"pl": "pl-PL",
	"sv": "sv-SE",
	"da": "da-DK",
}

type pollySpeechSynthesizer struct {
	pollySvc    pollyiface.PollyAPI
	pollyConfig *config.PollyConfig
	logger      outbound.LoggerPort
}

func NewPollySpeechSynthesizer(pollySvc pollyiface.PollyAPI, pollyConfig *config.PollyConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &pollySpeechSynthesizer{
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
		logger:      logger,
	}
}

// Synthesize renders the text as MP3 audio in the target language. Long text
// is synthesized in windows and the parts concatenated in order.
func (p *pollySpeechSynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", domain.ErrSynthesisFailed)
	}

	languageCode := VoiceLanguageCode(params.LanguageCode)
	voiceID, err := p.pickVoice(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	var audio bytes.Buffer
	for _, chunk := range chunkText(text, synthesisChunkSize) {
		out, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
			Text:         aws.String(chunk),
			OutputFormat: aws.String(p.pollyConfig.OutputFormat),
			VoiceId:      aws.String(voiceID),
			LanguageCode: aws.String(languageCode),
		})
		if err != nil {
			p.logger.ErrorWithFields(err, "SynthesizeSpeech call failed", map[string]interface{}{
				"voice":    voiceID,
				"language": languageCode,
			})
			return nil, fmt.Errorf("%w: %v", domain.ErrSynthesisFailed, err)
		}

		if _, err := io.Copy(&audio, out.AudioStream); err != nil {
			p.logger.Error(err, "Failed to read the audio stream")
			return nil, fmt.Errorf("%w: %v", domain.ErrSynthesisFailed, err)
		}
		if err := out.AudioStream.Close(); err != nil {
			p.logger.Error(err, "Failed to close the audio stream")
		}
	}

	p.logger.InfoWithFields("Speech synthesis finished", map[string]interface{}{
		"voice": voiceID,
		"bytes": audio.Len(),
	})

	return audio.Bytes(), nil
}

// pickVoice prefers a female voice registered for the language, falling back
// to the configured default when the lookup fails or finds none.
func (p *pollySpeechSynthesizer) pickVoice(ctx context.Context, languageCode string) (string, error) {
	out, err := p.pollySvc.DescribeVoicesWithContext(ctx, &polly.DescribeVoicesInput{
		LanguageCode: aws.String(languageCode),
	})
	if err != nil {
		p.logger.WarnWithFields("DescribeVoices failed, using default voice", map[string]interface{}{
			"language": languageCode,
			"default":  p.pollyConfig.DefaultVoiceID,
			"error":    err.Error(),
		})
		return p.pollyConfig.DefaultVoiceID, nil
	}

	for _, voice := range out.Voices {
		if aws.StringValue(voice.Gender) == polly.GenderFemale {
			return aws.StringValue(voice.Id), nil
		}
	}
	if len(out.Voices) > 0 {
		return aws.StringValue(out.Voices[0].Id), nil
	}

	p.logger.WarnWithFields("No voice registered for language, using default", map[string]interface{}{
		"language": languageCode,
		"default":  p.pollyConfig.DefaultVoiceID,
	})
	return p.pollyConfig.DefaultVoiceID, nil
}

// VoiceLanguageCode resolves a translation language code to the regional
// code used for voice lookup. Unknown codes fall through unchanged when they
// already carry a region, otherwise a same-region guess is made.
func VoiceLanguageCode(code string) string {
	if strings.Contains(code, "-") {
		return code
	}
	if mapped, ok := voiceLanguageCodes[strings.ToLower(code)]; ok {
		return mapped
	}
	return fmt.Sprintf("%s-%s", strings.ToLower(code), strings.ToUpper(code))
}
