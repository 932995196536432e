package config

import (
	"os"
)

type PollyConfig struct {
	DefaultVoiceID string
	OutputFormat   string
}

func GetPollyConfig() (*PollyConfig, error) {
	voiceID := os.Getenv("POLLY_VOICE_ID")
	if voiceID == "" {
		voiceID = "Joanna"
	}

	outputFormat := os.Getenv("POLLY_OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = "mp3"
	}

	return &PollyConfig{
		DefaultVoiceID: voiceID,
		OutputFormat:   outputFormat,
	}, nil
}
