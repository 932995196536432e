package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saransathish/Video-language-converter/application/ports/inbound"
	"github.com/saransathish/Video-language-converter/application/services"
	"github.com/saransathish/Video-language-converter/config"
	"github.com/saransathish/Video-language-converter/domain"
	"github.com/saransathish/Video-language-converter/infrastructure/adapters"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "video-language-converter",
		Short:        "Dub a video into another language with AWS Transcribe, Translate and Polly",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Pipeline failed")
	}
}

func run(ctx context.Context) error {
	// Settings come from a colocated .env file when present, plain
	// environment variables otherwise.
	_ = godotenv.Load()

	s3Config, err := config.GetS3Config()
	if err != nil {
		return fmt.Errorf("s3 config: %w", err)
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		return fmt.Errorf("pipeline config: %w", err)
	}

	transcribeConfig, err := config.GetTranscribeConfig()
	if err != nil {
		return fmt.Errorf("transcribe config: %w", err)
	}

	pollyConfig, err := config.GetPollyConfig()
	if err != nil {
		return fmt.Errorf("polly config: %w", err)
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Config: aws.Config{
			Region: aws.String(s3Config.Region),
		},
	}))

	zeroLogger := adapters.NewZerologWrapper()

	contentFetcher := adapters.NewContentFetcher(nil, zeroLogger)

	mediaStore := adapters.NewS3MediaStore(s3.New(sess), zeroLogger)

	transcriber := adapters.NewTranscribeJobRunner(transcribeservice.New(sess), contentFetcher, transcribeConfig, zeroLogger)

	translator := adapters.NewTranslateTextTranslator(translate.New(sess), zeroLogger)

	synthesizer := adapters.NewPollySpeechSynthesizer(polly.New(sess), pollyConfig, zeroLogger)

	dubPipeline := services.NewDubPipelineOrchestrator(zeroLogger, mediaStore, transcriber, translator, synthesizer)

	output, err := dubPipeline.Run(ctx, inbound.StartDubParams{
		LocalPath:      pipelineConfig.VideoPath,
		Source:         domain.NewStorageRef(s3Config.BucketName, pipelineConfig.VideoKey),
		SourceLanguage: pipelineConfig.SourceLanguage,
		TargetLanguage: pipelineConfig.TargetLanguage,
	})
	if err != nil {
		return err
	}

	log.Info().Str("uri", output.URI()).Msg("Dubbed audio written")
	return nil
}
