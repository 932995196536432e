package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/saransathish/Video-language-converter/application/ports/inbound"
	"github.com/saransathish/Video-language-converter/application/ports/outbound"
	"github.com/saransathish/Video-language-converter/domain"
)

type dubPipelineOrchestrator struct {
	logger      outbound.LoggerPort
	mediaStore  outbound.MediaStorePort
	transcriber outbound.TranscriberPort
	translator  outbound.TranslatorPort
	synthesizer outbound.SpeechSynthesizerPort
}

func NewDubPipelineOrchestrator(logger outbound.LoggerPort, mediaStore outbound.MediaStorePort,
	transcriber outbound.TranscriberPort, translator outbound.TranslatorPort,
	synthesizer outbound.SpeechSynthesizerPort) inbound.DubPipelineOrchestrator {
	return &dubPipelineOrchestrator{
		logger:      logger,
		mediaStore:  mediaStore,
		transcriber: transcriber,
		translator:  translator,
		synthesizer: synthesizer,
	}
}

// Run executes the four stages in order. Any stage error aborts the rest of
// the pipeline; artifacts written by earlier stages are left in place.
func (d *dubPipelineOrchestrator) Run(ctx context.Context, request inbound.StartDubParams) (domain.StorageRef, error) {
	uploaded, err := d.mediaStore.UploadFile(ctx, outbound.UploadFileParams{
		LocalPath:   request.LocalPath,
		Destination: request.Source,
	})
	if err != nil {
		d.logger.ErrorWithFields(err, "Upload stage failed", map[string]interface{}{
			"localPath": request.LocalPath,
			"bucket":    request.Source.Bucket,
			"key":       request.Source.Key,
		})
		return domain.StorageRef{}, fmt.Errorf("upload stage: %w", err)
	}

	d.logger.InfoWithFields("Uploaded source video", map[string]interface{}{
		"uri": uploaded.URI(),
	})

	transcript, err := d.transcriber.Transcribe(ctx, outbound.TranscribeParams{
		Media:        uploaded,
		LanguageCode: request.SourceLanguage,
	})
	if err != nil {
		d.logger.Error(err, "Transcription stage failed")
		return domain.StorageRef{}, fmt.Errorf("transcription stage: %w", err)
	}

	translated, err := d.translator.Translate(ctx, outbound.TranslateParams{
		Text:           transcript,
		SourceLanguage: translateLanguage(request.SourceLanguage),
		TargetLanguage: request.TargetLanguage,
	})
	if err != nil {
		d.logger.Error(err, "Translation stage failed")
		return domain.StorageRef{}, fmt.Errorf("translation stage: %w", err)
	}

	audio, err := d.synthesizer.Synthesize(ctx, outbound.SynthesizeParams{
		Text:         translated,
		LanguageCode: request.TargetLanguage,
	})
	if err != nil {
		d.logger.Error(err, "Synthesis stage failed")
		return domain.StorageRef{}, fmt.Errorf("synthesis stage: %w", err)
	}

	output, err := d.mediaStore.PutAudio(ctx, outbound.PutAudioParams{
		Destination: domain.NewStorageRef(uploaded.Bucket, OutputKey(uploaded.Key, request.TargetLanguage)),
		Content:     audio,
	})
	if err != nil {
		d.logger.Error(err, "Failed to store synthesized audio")
		return domain.StorageRef{}, fmt.Errorf("synthesis stage: %w", err)
	}

	d.logger.InfoWithFields("Dub pipeline finished", map[string]interface{}{
		"uri": output.URI(),
	})

	return output, nil
}

// OutputKey derives the destination key for the synthesized audio from the
// source key and the target language, e.g. clips/intro.mp4 -> clips/intro.mp4.es.mp3.
func OutputKey(sourceKey string, targetLanguage string) string {
	return fmt.Sprintf("%s.%s.mp3", sourceKey, targetLanguage)
}

// translateLanguage trims a regional transcription code such as en-US down to
// the bare code Amazon Translate expects.
func translateLanguage(code string) string {
	if idx := strings.Index(code, "-"); idx > 0 {
		return code[:idx]
	}
	return code
}
