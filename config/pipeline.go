package config

import (
	"fmt"
	"os"
)

type PipelineConfig struct {
	VideoPath      string
	VideoKey       string
	SourceLanguage string
	TargetLanguage string
}

func GetPipelineConfig() (*PipelineConfig, error) {
	videoPath := os.Getenv("VIDEO_PATH")
	if videoPath == "" {
		return nil, fmt.Errorf("VIDEO_PATH must be set")
	}

	videoKey := os.Getenv("VIDEO_KEY")
	if videoKey == "" {
		return nil, fmt.Errorf("VIDEO_KEY must be set")
	}

	targetLanguage := os.Getenv("TARGET_LANGUAGE")
	if targetLanguage == "" {
		return nil, fmt.Errorf("TARGET_LANGUAGE must be set")
	}

	sourceLanguage := os.Getenv("SOURCE_LANGUAGE")
	if sourceLanguage == "" {
		sourceLanguage = "en-US"
	}

	return &PipelineConfig{
		VideoPath:      videoPath,
		VideoKey:       videoKey,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}, nil
}
